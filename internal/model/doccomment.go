package model

import "strings"

// DocComment is the documentation attached to a declaration. Lines that
// start with "@name" become tags; everything else is description text.
type DocComment struct {
	Text string
	Tags map[string][]string
}

// ParseDocComment strips comment markers from raw and splits out tags.
func ParseDocComment(raw string) *DocComment {
	d := &DocComment{}
	var body []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "/*")
		line = strings.TrimSpace(strings.TrimSuffix(line, "*/"))
		if strings.HasPrefix(line, "@") {
			name, value, _ := strings.Cut(line[1:], " ")
			if name == "" {
				continue
			}
			if d.Tags == nil {
				d.Tags = make(map[string][]string)
			}
			name = strings.ToLower(name)
			d.Tags[name] = append(d.Tags[name], strings.TrimSpace(value))
			continue
		}
		body = append(body, line)
	}
	d.Text = strings.TrimSpace(strings.Join(body, "\n"))
	return d
}

// Tag returns all values of a tag joined by ", ". Missing tags yield "".
func (d *DocComment) Tag(name string) string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Tags[name], ", ")
}

// Description returns the text part, "" for a nil comment.
func (d *DocComment) Description() string {
	if d == nil {
		return ""
	}
	return d.Text
}
