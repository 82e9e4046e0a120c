package strength

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-vault-guard/internal/config"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
)

//go:embed data/*.txt
var embeddedLists embed.FS

const (
	embeddedPasswordsPath = "data/passwords.txt"
	embeddedWordsPath     = "data/words.txt"
)

// Dictionaries holds the reference lists a password is compared against.
type Dictionaries struct {
	// Passwords are commonly used passwords.
	Passwords []string
	// Words are English dictionary words.
	Words []string
}

// LoadDictionaries reads both lists once. Configured paths take precedence
// over the embedded lists. A list that cannot be read is logged and left
// empty, which only weakens the similarity penalty.
func LoadDictionaries(cfg config.Dictionary, log *logger.Logger) Dictionaries {
	return Dictionaries{
		Passwords: loadList(cfg.PasswordsPath, embeddedPasswordsPath, log),
		Words:     loadList(cfg.WordsPath, embeddedWordsPath, log),
	}
}

func loadList(path, embedded string, log *logger.Logger) []string {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		path = embedded
		data, err = embeddedLists.ReadFile(embedded)
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dictionary unavailable, similarity check degraded")
		return nil
	}

	list, err := parseList(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dictionary unreadable, similarity check degraded")
		return nil
	}

	log.Debug().Str("path", path).Int("entries", len(list)).Msg("dictionary loaded")
	return list
}

// parseList returns the non-blank lines of data.
func parseList(data []byte) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan dictionary: %w", err)
	}
	return list, nil
}
