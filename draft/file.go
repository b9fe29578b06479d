package draft

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fence = "+++"

// Markdown encodes d as TOML front matter followed by the content. A
// non-empty content always gets one closing newline, which Parse strips
// again, so the content round-trips byte for byte.
func (d *Draft) Markdown() ([]byte, error) {
	meta, err := toml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(fence + "\n")
	buf.Write(meta)
	buf.WriteString(fence + "\n\n")
	if d.Content != "" {
		buf.WriteString(d.Content)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Parse decodes a draft. Input without front matter becomes the content of a
// new poetry draft.
func Parse(data []byte) (*Draft, error) {
	src := strings.ReplaceAll(string(data), "\r\n", "\n")
	d := New()
	if !strings.HasPrefix(src, fence+"\n") {
		d.Content = src
		return d, nil
	}

	rest := src[len(fence)+1:]
	end := strings.Index(rest, "\n"+fence+"\n")
	body := ""
	switch {
	case end >= 0:
		body = rest[end+len(fence)+2:]
		rest = rest[:end+1]
	case strings.HasSuffix(rest, "\n"+fence):
		rest = strings.TrimSuffix(rest, fence)
	default:
		return nil, fmt.Errorf("parse draft: unterminated front matter")
	}

	if err := toml.Unmarshal([]byte(rest), d); err != nil {
		return nil, fmt.Errorf("parse draft front matter: %w", err)
	}
	if d.Kind == "" {
		d.Kind = KindPoetry
	}
	d.Content = strings.TrimSuffix(strings.TrimPrefix(body, "\n"), "\n")
	return d, nil
}

// Load reads a draft file. A missing file returns an error matching
// fs.ErrNotExist.
func Load(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save writes d to path through a temporary file and rename so a crash
// never leaves a truncated draft. An existing file keeps its permissions;
// a new one gets 0644.
func (d *Draft) Save(path string) error {
	data, err := d.Markdown()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	defer os.Remove(tmp.Name())

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("save draft: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save draft: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}
