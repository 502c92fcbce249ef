package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SampleBankName is the bank written next to the scaffolded config.
const SampleBankName = "sample.json"

const defaultConfig = `version: 1
bank: ".quizplay/sample.json"
# theme: "Vocabulaire"
ui: auto
no_color: false
seed: 0
`

const sampleBank = `{
  "Vocabulaire": [
    {"type": "vocab", "question": "Traduire : the cat", "answer": "le chat"},
    {"type": "vocab", "question": "Traduire : the house", "answer": "la maison"},
    {"type": "qcm", "question": "Quel mot est un adjectif ?", "options": ["courir", "rapide", "vite"], "answer": "rapide"}
  ],
  "Ordre des adjectifs": [
    {"type": "adjectif-order", "question": "Remettez les mots dans l'ordre.", "answer": ["une", "jolie", "petite", "maison"]},
    {"type": "adjectif-order", "question": "Remettez les mots dans l'ordre.", "answer": ["un", "vieux", "livre", "rouge"]}
  ],
  "Conditionnel": [
    {"type": "conditionnel", "question": "Si j'avais le temps, je ___ (voyager). Degré ?", "answer": "voyagerais", "degree": "1"},
    {"type": "conditionnel", "question": "Si elle avait su, elle ___ (venir). Degré ?", "answer": "serait venue", "degree": "2"}
  ]
}
`

// Scaffold writes a starter config and sample bank under root/.quizplay.
// Existing files are never overwritten.
func Scaffold(root string) error {
	if root == "" {
		return fmt.Errorf("root directory is required")
	}
	configPath := ConfigPath(root)
	bankPath := filepath.Join(ConfigDir(root), SampleBankName)
	for _, path := range []string{configPath, bankPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", path)
			}
			return fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %q: %w", path, err)
		}
	}

	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(bankPath, []byte(sampleBank), 0o644); err != nil {
		return fmt.Errorf("write sample bank: %w", err)
	}
	return nil
}
