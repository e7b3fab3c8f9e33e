package output

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer persiste os artefatos da análise no diretório de saída
type Writer interface {
	SaveJSON(name string, payload any) (string, error)
	SaveMarkdown(name string, content string) (string, error)
}

type fileWriter struct {
	dir string
}

func NewFileWriter(dir string) Writer {
	return &fileWriter{
		dir: dir,
	}
}

// SaveJSON serializa o payload com indentação e grava em <dir>/<name>
func (w *fileWriter) SaveJSON(name string, payload any) (string, error) {
	buffer, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errors.Wrapf(err, "erro ao serializar %s", name)
	}

	return w.write(name, buffer)
}

// SaveMarkdown grava o conteúdo markdown em <dir>/<name>
func (w *fileWriter) SaveMarkdown(name string, content string) (string, error) {
	return w.write(name, []byte(content))
}

func (w *fileWriter) write(name string, content []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar o diretório de saída %s", w.dir)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar %s", path)
	}

	logrus.WithField("path", path).Debug("Artefato gravado")
	return path, nil
}
