package i18n

// Key identifies a user-facing message.
type Key string

const (
	KeyInvalidNumber     Key = "invalid_number"
	KeyOutOfRange        Key = "out_of_range"
	KeyInvalidWindow     Key = "invalid_window"
	KeyInvalidWindowOpen Key = "invalid_window_open"
	KeyInvalidStart      Key = "invalid_start"
	KeyEmptySelection    Key = "empty_selection"
	KeyUnsupportedBody   Key = "unsupported_body"
	KeyMalformedRequest  Key = "malformed_request"
	KeyChartFailed       Key = "chart_failed"
	KeyNoSeries          Key = "no_series"
	KeyInvalidFilename   Key = "invalid_filename"
	KeyFileNotFound      Key = "file_not_found"
	KeyUnsupportedLocale Key = "unsupported_locale"
	KeyLanguageChanged   Key = "language_changed"

	KeyFieldLatitude  Key = "field_latitude"
	KeyFieldLongitude Key = "field_longitude"
	KeyFieldHours     Key = "field_hours"
)

// messages is the lookup table of message templates per locale.
// Positional parameters use the universal-translator {0}, {1} syntax.
var messages = map[Locale]map[Key]string{
	English: {
		KeyInvalidNumber:     "{0} must be a number.",
		KeyOutOfRange:        "{0} is out of range ({1} to {2}).",
		KeyInvalidWindow:     "Hours must be greater than 0 and at most {0}.",
		KeyInvalidWindowOpen: "Hours must be greater than 0.",
		KeyInvalidStart:      "Start time must be an RFC 3339 timestamp.",
		KeyEmptySelection:    "Select at least one celestial body.",
		KeyUnsupportedBody:   "Unsupported celestial bodies: {0}.",
		KeyMalformedRequest:  "Request body must be valid JSON.",
		KeyChartFailed:       "Failed to generate chart.",
		KeyNoSeries:          "No celestial body could be computed.",
		KeyInvalidFilename:   "Invalid file name.",
		KeyFileNotFound:      "File not found.",
		KeyUnsupportedLocale: "Unsupported language: {0}.",
		KeyLanguageChanged:   "Language set to English.",

		KeyFieldLatitude:  "Latitude",
		KeyFieldLongitude: "Longitude",
		KeyFieldHours:     "Hours",
	},
	Chinese: {
		KeyInvalidNumber:     "{0}必須是數字。",
		KeyOutOfRange:        "{0}超出範圍（{1} 至 {2}）。",
		KeyInvalidWindow:     "時數必須大於 0 且不超過 {0}。",
		KeyInvalidWindowOpen: "時數必須大於 0。",
		KeyInvalidStart:      "開始時間必須是 RFC 3339 格式。",
		KeyEmptySelection:    "請至少選擇一個天體。",
		KeyUnsupportedBody:   "不支援的天體：{0}。",
		KeyMalformedRequest:  "請求內容必須是有效的 JSON。",
		KeyChartFailed:       "生成圖表時出錯。",
		KeyNoSeries:          "無法計算任何天體的資料。",
		KeyInvalidFilename:   "無效的檔案名稱。",
		KeyFileNotFound:      "找不到檔案。",
		KeyUnsupportedLocale: "不支援的語言：{0}。",
		KeyLanguageChanged:   "語言已切換為中文。",

		KeyFieldLatitude:  "緯度",
		KeyFieldLongitude: "經度",
		KeyFieldHours:     "時數",
	},
}
