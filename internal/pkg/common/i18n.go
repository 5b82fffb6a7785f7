package common

// localized user-facing messages, keyed by error code
var localizedMessages = map[string][2]string{
	ErrCodeInvalidRequest:       {"Invalid request. Please check your input and try again.", "Permintaan tidak valid. Silakan periksa input Anda dan coba lagi."},
	ErrCodeServiceMisconfigured: {"AI service configuration error. Please contact support.", "Kesalahan konfigurasi layanan AI. Silakan hubungi dukungan."},
	ErrCodeRateLimited:          {"Too many requests. Please wait a moment and try again.", "Terlalu banyak permintaan. Harap tunggu sebentar dan coba lagi."},
	ErrCodeServiceUnavailable:   {"Service temporarily unavailable. Please try again later.", "Layanan sementara tidak tersedia. Silakan coba lagi nanti."},
	ErrCodeEmptyResponse:        {"Empty response from AI. Please try again.", "Respons AI kosong. Silakan coba lagi."},
	ErrCodeConnectivityFailure:  {"Network error. Please check your internet connection.", "Kesalahan jaringan. Silakan periksa koneksi internet Anda."},
	ErrCodeUpstreamError:        {"Failed to get response. Please try again.", "Gagal mendapatkan respons. Silakan coba lagi."},
	ErrCodePersistence:          {"Failed to save your data. Please try again.", "Gagal menyimpan data Anda. Silakan coba lagi."},
	ErrCodeNotFound:             {"The requested item was not found.", "Item yang diminta tidak ditemukan."},
	ErrCodeUnauthorized:         {"You must be logged in to do that.", "Anda harus masuk terlebih dahulu."},
	ErrCodeInternalError:        {"Something went wrong. Please try again.", "Terjadi kesalahan. Silakan coba lagi."},
	ErrCodeRequestTimeout:       {"The request took too long. Please try again.", "Permintaan terlalu lama. Silakan coba lagi."},
}

// Localize returns the user-facing message for an error code
func Localize(code string, lang Language) string {
	msgs, ok := localizedMessages[code]
	if !ok {
		msgs = localizedMessages[ErrCodeUpstreamError]
	}
	if lang == Indonesian {
		return msgs[1]
	}
	return msgs[0]
}

// LocalizeError picks the message for err, using the validation text as-is
func LocalizeError(err error, lang Language) string {
	if IsValidationError(err) {
		return err.Error()
	}
	if ce, ok := AsCustomError(err); ok {
		return Localize(ce.Code, lang)
	}
	return Localize(ErrCodeUpstreamError, lang)
}

// Apology is appended to the chat transcript when an assistant turn fails
func Apology(message string, lang Language) string {
	return lang.Pick(
		"Sorry, I encountered an error: "+message+" Please try again or contact support if the problem persists.",
		"Maaf, saya menemui kesalahan: "+message+" Silakan coba lagi atau hubungi dukungan jika masalah berlanjut.",
	)
}

// RecipeApology is appended when recipe generation fails inside a chat turn
func RecipeApology(lang Language) string {
	return lang.Pick(
		"I'm sorry, I couldn't generate a recipe right now. Please try again with different ingredients or preferences.",
		"Maaf, saya tidak bisa membuat resep saat ini. Silakan coba lagi dengan bahan atau preferensi yang berbeda.",
	)
}

// RecipeCreated is the chat text that accompanies a generated recipe
func RecipeCreated(lang Language) string {
	return lang.Pick(
		"I've created a delicious recipe for you using your ingredients!",
		"Saya telah membuat resep lezat untuk Anda menggunakan bahan-bahan Anda!",
	)
}
