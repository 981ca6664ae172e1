// internal/i18n/i18n.go
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
}

var instance *I18n
var once sync.Once

// Initialize sets up the catalog with the built-in English strings and then
// overlays any locale files found under localesPath. A missing locale
// directory is not an error; the built-in catalog always works.
func Initialize(localesPath string) error {
	var err error
	once.Do(func() {
		instance = &I18n{
			translations: map[string]map[string]string{
				"en": builtinEnglish(),
			},
			defaultLang: "en",
		}
		err = instance.LoadTranslations(localesPath)
	})
	return err
}

func (i *I18n) LoadTranslations(localesPath string) error {
	if localesPath == "" {
		return nil
	}

	entries, err := os.ReadDir(localesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		lang := entry.Name()[:len(entry.Name())-len(".json")]
		data, err := os.ReadFile(filepath.Join(localesPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", entry.Name(), err)
		}

		i.mu.Lock()
		existing, ok := i.translations[lang]
		if !ok {
			existing = make(map[string]string)
			i.translations[lang] = existing
		}
		for key, text := range translations {
			existing[key] = text
		}
		i.mu.Unlock()
	}

	return nil
}

func (i *I18n) T(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	// Try to get translation for requested language
	if translations, exists := i.translations[lang]; exists {
		if text, exists := translations[key]; exists {
			if len(args) > 0 {
				return fmt.Sprintf(text, args...)
			}
			return text
		}
	}

	// Fallback to default language
	if lang != i.defaultLang {
		if translations, exists := i.translations[i.defaultLang]; exists {
			if text, exists := translations[key]; exists {
				if len(args) > 0 {
					return fmt.Sprintf(text, args...)
				}
				return text
			}
		}
	}

	// Return key if no translation found
	return key
}

// Global functions
func T(lang, key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(lang, key, args...)
	}
	return key
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{"en"}
	}

	instance.mu.RLock()
	defer instance.mu.RUnlock()

	langs := make([]string, 0, len(instance.translations))
	for lang := range instance.translations {
		langs = append(langs, lang)
	}
	return langs
}

func builtinEnglish() map[string]string {
	return map[string]string{
		KeySuccess: "Success",
		KeyError:   "Something went wrong",

		KeyAuthRequired:     "Authentication required",
		KeyAuthInvalidToken: "Invalid authentication token",
		KeyAuthTokenExpired: "Authentication token expired",
		KeyAccessDenied:     "Access denied",

		KeyListingCreated:       "Listing created",
		KeyListingUpdated:       "Listing updated",
		KeyListingDeleted:       "Listing deleted",
		KeyListingNotFound:      "Listing not found",
		KeyListingSubmitted:     "Listing submitted for review",
		KeyListingApproved:      "Listing approved and published",
		KeyListingRejected:      "Listing rejected",
		KeyListingSentBack:      "Listing sent back for correction",
		KeyListingHidden:        "Listing hidden from catalog",
		KeyListingUnhidden:      "Listing restored to catalog",
		KeyListingSKUExhausted:  "Could not allocate a SKU, please retry",
		KeyListingWriteConflict: "Listing was modified concurrently, please retry",

		KeyCatalogNotFound: "Catalog item not found",

		KeyNotificationNotFound: "Notification not found",
		KeyNotificationRead:     "Notification marked as read",

		KeyValidationRequired: "%s is required",
		KeyValidationInvalid:  "Invalid %s",

		KeyFileUploadSuccess: "File uploaded",
		KeyFileUploadFailed:  "File upload failed",
		KeyFileInvalidType:   "File type not allowed",
		KeyFileTooLarge:      "File exceeds the maximum allowed size",
	}
}
