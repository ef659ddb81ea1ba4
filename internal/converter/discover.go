package converter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// hasPythonShebang reports whether the file's first line is a "#!" line
// containing one of the accepted interpreter names.
func hasPythonShebang(path string, acceptedShebangs []string) bool {
	if len(acceptedShebangs) == 0 {
		acceptedShebangs = []string{"python"}
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return false
	}
	firstLine := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(firstLine, "#!") {
		return false
	}
	for _, name := range acceptedShebangs {
		if strings.Contains(firstLine, name) {
			return true
		}
	}
	return false
}

// FindPythonFiles walks root and returns every Python file under it: files
// with a .py extension, plus extensionless files whose first line is an
// accepted shebang. Hidden directories and hidden files are skipped.
func FindPythonFiles(root string, acceptedShebangs []string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		ext := filepath.Ext(path)
		if ext == ".py" {
			files = append(files, path)
		} else if ext == "" && hasPythonShebang(path, acceptedShebangs) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
