package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	QuillFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type info struct {
	name    string
	aliases []string
	suffix  []string
}

// formats is indexed by Format; the first suffix is the one written.
var formats = [...]info{
	QuillFormat: {name: "quillml", aliases: []string{"q", "quill"}, suffix: []string{".quillml", ".quill", ".qml"}},
	JSONFormat:  {name: "json", aliases: []string{"j"}, suffix: []string{".json"}},
	YAMLFormat:  {name: "yaml", aliases: []string{"y", "yml"}, suffix: []string{".yaml", ".yml"}},
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(formats) }

func ParseFormat(v string) (Format, error) {
	for i := range formats {
		in := &formats[i]
		if v == in.name {
			return Format(i), nil
		}
		for _, a := range in.aliases {
			if v == a {
				return Format(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath picks the format from the extension of path, case-insensitively.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for i := range formats {
		for _, s := range formats[i].suffix {
			if s == ext {
				return Format(i), true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formats[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsQuill() bool { return f == QuillFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// Suffix returns the file extension written for this format, dot included.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return formats[f].suffix[0]
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range formats {
		res[i] = Format(i)
	}
	return res
}
