package bintext

type Format uint8

const (
	Bin Format = 1 + iota
	Hex
)

var FormatNames = map[Format]string{
	Bin: "bin",
	Hex: "hex",
}

var formats = [...]Format{Bin, Hex}

var FormatString = getOptionString(formats[:], FormatNames)

func ParseFormat(s string) (Format, error) {
	return parseOption(s, formats[:], FormatNames, ErrFormat)
}

// TokenLen returns the width of one rendered word of depth bits.
func (f Format) TokenLen(depth int) int {
	if f == Hex {
		return depth / 4
	}
	return depth
}

type Endian uint8

const (
	Little Endian = 1 + iota
	Big
)

var EndianNames = map[Endian]string{
	Little: "little",
	Big:    "big",
}

var endians = [...]Endian{Little, Big}

var EndianString = getOptionString(endians[:], EndianNames)

func ParseEndian(s string) (Endian, error) {
	return parseOption(s, endians[:], EndianNames, ErrEndian)
}

type Fill uint8

const (
	NoFill Fill = 1 + iota
	FillFF
)

var FillNames = map[Fill]string{
	NoFill: "0",
	FillFF: "1",
}

var fills = [...]Fill{NoFill, FillFF}

var FillString = getOptionString(fills[:], FillNames)

func ParseFill(s string) (Fill, error) {
	return parseOption(s, fills[:], FillNames, ErrFill)
}

const fillByte = 0xff

type LineEnding uint8

const (
	LF LineEnding = 1 + iota
	CR
	CRLF
)

var LineEndingNames = map[LineEnding]string{
	LF:   "n",
	CR:   "r",
	CRLF: "rn",
}

var lineEndings = [...]LineEnding{LF, CR, CRLF}

var LineEndingString = getOptionString(lineEndings[:], LineEndingNames)

func ParseLineEnding(s string) (LineEnding, error) {
	return parseOption(s, lineEndings[:], LineEndingNames, ErrLineEnding)
}

var terminators = map[LineEnding]string{
	LF:   "\n",
	CR:   "\r",
	CRLF: "\r\n",
}

// Terminator returns the byte sequence ending every emitted line.
func (l LineEnding) Terminator() string {
	return terminators[l]
}

const digits = "0123456789ABCDEF"

// FormatChunk renders chunk as an unsigned integer read in endian byte order,
// zero-padded to the full width of a depth-bit word.
func FormatChunk(chunk []byte, format Format, endian Endian, depth int) (string, error) {
	if err := CheckDepth(depth); err != nil {
		return "", err
	}
	if len(chunk) > depth/8 {
		return "", ErrChunk
	}
	if err := checkOption(format, formats[:], ErrFormat); err != nil {
		return "", err
	}
	if err := checkOption(endian, endians[:], ErrEndian); err != nil {
		return "", err
	}
	return string(appendToken(nil, chunk, format, endian, depth/8)), nil
}

// appendToken walks the word from its most significant byte down. Positions
// not covered by a short chunk are leading zeros.
func appendToken(dst, chunk []byte, format Format, endian Endian, size int) []byte {
	pad := size - len(chunk)
	for i := 0; i < size; i++ {
		var b byte
		if j := i - pad; j >= 0 {
			if endian == Little {
				b = chunk[len(chunk)-1-j]
			} else {
				b = chunk[j]
			}
		}
		if format == Hex {
			dst = append(dst, digits[b>>4], digits[b&0x0f])
			continue
		}
		for k := 7; k >= 0; k-- {
			dst = append(dst, '0'+((b>>k)&1))
		}
	}
	return dst
}

func fillChunk(buf []byte, n int) []byte {
	for i := n; i < len(buf); i++ {
		buf[i] = fillByte
	}
	return buf
}
