package utils

import (
	"embed"
	"io/ioutil"
	"path"
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// InitI18NBundle loads the built-in chart labels, then any yaml message
// files found in dir, which override them.
func InitI18NBundle(dir string) {
	bundleOnce.Do(func() {
		bundle = newBundle(dir)
	})
}

func newBundle(dir string) *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		log.WithField("prefix", "i18n").Panic(err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			log.WithField("prefix", "i18n").Panic(err)
		}
		b.MustParseMessageFileBytes(data, name)
	}

	if dir == "" {
		return b
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		log.WithFields(log.Fields{"prefix": "i18n", "dir": dir, "error": err}).Warn("list message files")
		return b
	}
	for _, f := range files {
		data, err := ioutil.ReadFile(f)
		if err != nil {
			log.WithFields(log.Fields{"prefix": "i18n", "file": f, "error": err}).Warn("read message file")
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f); err != nil {
			log.WithFields(log.Fields{"prefix": "i18n", "file": f, "error": err}).Warn("parse message file")
		}
	}
	return b
}

func NewLocalizer(lang string) *i18n.Localizer {
	InitI18NBundle("")
	return i18n.NewLocalizer(bundle, lang)
}

// Translator renders chart labels in one language.
type Translator struct {
	localizer *i18n.Localizer
}

func NewTranslator(lang string) Translator {
	return Translator{localizer: NewLocalizer(lang)}
}

// Translate returns the message for id, or id itself when it is unknown.
func (t Translator) Translate(id string, data map[string]interface{}) string {
	if t.localizer == nil {
		t.localizer = NewLocalizer(language.English.String())
	}

	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.WithFields(log.Fields{"prefix": "i18n", "id": id, "error": err}).Debug("missing translation")
		return id
	}
	return msg
}
