package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySelectFiles       = "select_files"
	KeyAddFiles          = "add_files"
	KeySelectFolder      = "select_folder"
	KeyRemove            = "remove"
	KeyClear             = "clear"
	KeyMoveUp            = "move_up"
	KeyMoveDown          = "move_down"
	KeyFilesHeader       = "files_header"
	KeyFileCount         = "file_count"
	KeyOutputFormat      = "output_format"
	KeyCombinePDF        = "combine_pdf"
	KeyConvert           = "convert"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyOutputDirectory   = "output_directory"
	KeyRevealOnComplete  = "reveal_on_complete"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyWarning           = "warning"
	KeySuccess           = "success"
	KeyError             = "error"
	KeySelectFilesFirst  = "select_files_first"
	KeyConvertSuccess    = "convert_success"
	KeyErrorOccurred     = "error_occurred"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyNoImagesInFolder  = "no_images_in_folder"
	KeyStatusReady       = "status_ready"
	KeyStatusCombining   = "status_combining"
	KeyStatusConverting  = "status_converting"
	KeyStatusCompleted   = "status_completed"
	KeyConversionRunning = "conversion_running"
	KeyOpenPDF           = "open_pdf"
	KeyClose             = "close"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

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

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Converter",
		KeySelectFiles:       "Select Files",
		KeyAddFiles:          "Add Files",
		KeySelectFolder:      "Select Folder",
		KeyRemove:            "Remove",
		KeyClear:             "Clear",
		KeyMoveUp:            "Up",
		KeyMoveDown:          "Down",
		KeyFilesHeader:       "Selected files (drag to reorder)",
		KeyFileCount:         "%d file(s)",
		KeyOutputFormat:      "Output Format",
		KeyCombinePDF:        "Combine images into single PDF",
		KeyConvert:           "Convert",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyOutputDirectory:   "Default Output Directory",
		KeyRevealOnComplete:  "Show result in file manager",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyWarning:           "Warning",
		KeySuccess:           "Success",
		KeyError:             "Error",
		KeySelectFilesFirst:  "Please select files first!",
		KeyConvertSuccess:    "All files converted successfully!",
		KeyErrorOccurred:     "An error occurred: %s",
		KeyErrorOpeningFile:  "Error opening file",
		KeyNoImagesInFolder:  "No images found in the selected folder",
		KeyStatusReady:       "Ready",
		KeyStatusCombining:   "Creating combined PDF...",
		KeyStatusConverting:  "Converting file %d of %d",
		KeyStatusCompleted:   "Conversion completed!",
		KeyConversionRunning: "A conversion is already running",
		KeyOpenPDF:           "Open PDF",
		KeyClose:             "Close",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Конвертер изображений",
		KeySelectFiles:       "Выбрать файлы",
		KeyAddFiles:          "Добавить файлы",
		KeySelectFolder:      "Выбрать папку",
		KeyRemove:            "Удалить",
		KeyClear:             "Очистить",
		KeyMoveUp:            "Вверх",
		KeyMoveDown:          "Вниз",
		KeyFilesHeader:       "Выбранные файлы (перетащите для сортировки)",
		KeyFileCount:         "Файлов: %d",
		KeyOutputFormat:      "Формат вывода",
		KeyCombinePDF:        "Объединить изображения в один PDF",
		KeyConvert:           "Конвертировать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyOutputDirectory:   "Папка для результатов",
		KeyRevealOnComplete:  "Показать результат в файловом менеджере",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyWarning:           "Внимание",
		KeySuccess:           "Готово",
		KeyError:             "Ошибка",
		KeySelectFilesFirst:  "Сначала выберите файлы!",
		KeyConvertSuccess:    "Все файлы успешно сконвертированы!",
		KeyErrorOccurred:     "Произошла ошибка: %s",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyNoImagesInFolder:  "В выбранной папке нет изображений",
		KeyStatusReady:       "Готово к работе",
		KeyStatusCombining:   "Создание общего PDF...",
		KeyStatusConverting:  "Конвертация файла %d из %d",
		KeyStatusCompleted:   "Конвертация завершена!",
		KeyConversionRunning: "Конвертация уже выполняется",
		KeyOpenPDF:           "Открыть PDF",
		KeyClose:             "Закрыть",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Imagens",
		KeySelectFiles:       "Selecionar Arquivos",
		KeyAddFiles:          "Adicionar Arquivos",
		KeySelectFolder:      "Selecionar Pasta",
		KeyRemove:            "Remover",
		KeyClear:             "Limpar",
		KeyMoveUp:            "Subir",
		KeyMoveDown:          "Descer",
		KeyFilesHeader:       "Arquivos selecionados (arraste para reordenar)",
		KeyFileCount:         "%d arquivo(s)",
		KeyOutputFormat:      "Formato de Saída",
		KeyCombinePDF:        "Combinar imagens em um único PDF",
		KeyConvert:           "Converter",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyOutputDirectory:   "Diretório de Saída Padrão",
		KeyRevealOnComplete:  "Mostrar resultado no gerenciador de arquivos",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyWarning:           "Aviso",
		KeySuccess:           "Sucesso",
		KeyError:             "Erro",
		KeySelectFilesFirst:  "Por favor, selecione os arquivos primeiro!",
		KeyConvertSuccess:    "Todos os arquivos foram convertidos com sucesso!",
		KeyErrorOccurred:     "Ocorreu um erro: %s",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyNoImagesInFolder:  "Nenhuma imagem encontrada na pasta selecionada",
		KeyStatusReady:       "Pronto",
		KeyStatusCombining:   "Criando PDF combinado...",
		KeyStatusConverting:  "Convertendo arquivo %d de %d",
		KeyStatusCompleted:   "Conversão concluída!",
		KeyConversionRunning: "Uma conversão já está em andamento",
		KeyOpenPDF:           "Abrir PDF",
		KeyClose:             "Fechar",
	}
}
