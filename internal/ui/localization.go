package ui

import "github.com/ytget/moodlists/internal/config"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyHeader             = "header"
	KeyInfo               = "info"
	KeyOpenSelected       = "open_selected"
	KeyOpenAll            = "open_all"
	KeyLanguage           = "language"
	KeyFileMissingTitle   = "file_missing_title"
	KeyFileMissingMessage = "file_missing_message"
	KeySelectOneTitle     = "select_one_title"
	KeySelectOneMessage   = "select_one_message"
	KeyNoLinkTitle        = "no_link_title"
	KeyNoLinkMessage      = "no_link_message"
	KeyNoLinksTitle       = "no_links_title"
	KeyNoLinksMessage     = "no_links_message"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return config.GetLanguageOptions()
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Mood → Spotify Playlists",
		KeyHeader:             "Select your mood to open curated Spotify playlists",
		KeyInfo:               "Click a mood button to see playlists (English + Hindi where available).",
		KeyOpenSelected:       "Open Selected Playlist",
		KeyOpenAll:            "Open All Shown Playlists",
		KeyLanguage:           "Language",
		KeyFileMissingTitle:   "File missing",
		KeyFileMissingMessage: "%s not found in the project folder.",
		KeySelectOneTitle:     "Select one",
		KeySelectOneMessage:   "Please select a playlist from the list first.",
		KeyNoLinkTitle:        "No link",
		KeyNoLinkMessage:      "Couldn't extract a link.",
		KeyNoLinksTitle:       "No links",
		KeyNoLinksMessage:     "No links to open.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Настроение → плейлисты Spotify",
		KeyHeader:             "Выберите настроение, чтобы открыть подборку плейлистов Spotify",
		KeyInfo:               "Нажмите на кнопку настроения, чтобы увидеть плейлисты (английские и хинди, если есть).",
		KeyOpenSelected:       "Открыть выбранный плейлист",
		KeyOpenAll:            "Открыть все показанные плейлисты",
		KeyLanguage:           "Язык",
		KeyFileMissingTitle:   "Файл не найден",
		KeyFileMissingMessage: "%s не найден в папке проекта.",
		KeySelectOneTitle:     "Выберите плейлист",
		KeySelectOneMessage:   "Сначала выберите плейлист в списке.",
		KeyNoLinkTitle:        "Нет ссылки",
		KeyNoLinkMessage:      "Не удалось извлечь ссылку.",
		KeyNoLinksTitle:       "Нет ссылок",
		KeyNoLinksMessage:     "Нет ссылок для открытия.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Humor → Playlists do Spotify",
		KeyHeader:             "Selecione seu humor para abrir playlists selecionadas do Spotify",
		KeyInfo:               "Clique em um botão de humor para ver as playlists (inglês + hindi quando disponível).",
		KeyOpenSelected:       "Abrir Playlist Selecionada",
		KeyOpenAll:            "Abrir Todas as Playlists Exibidas",
		KeyLanguage:           "Idioma",
		KeyFileMissingTitle:   "Arquivo ausente",
		KeyFileMissingMessage: "%s não encontrado na pasta do projeto.",
		KeySelectOneTitle:     "Selecione uma",
		KeySelectOneMessage:   "Selecione uma playlist da lista primeiro.",
		KeyNoLinkTitle:        "Sem link",
		KeyNoLinkMessage:      "Não foi possível extrair um link.",
		KeyNoLinksTitle:       "Sem links",
		KeyNoLinksMessage:     "Nenhum link para abrir.",
	}
}
