// Package report holds the fixed formatting rules for archived call
// recordings: display-name derivation, the MIME correction Drive needs, and
// the plain-text report document.
package report

import (
	"fmt"
	"strings"
	"time"
)

// Android call recorder apps name uploads "Grabacion de llamada <contact>";
// the archive keeps only the contact part.
const recordingPrefix = "Grabacion de llamada "

const timestampLayout = "02/01/2006 15:04"

// DisplayName strips the recording prefix once. Names without the prefix are
// returned unchanged.
func DisplayName(name string) string {
	return strings.TrimPrefix(name, recordingPrefix)
}

// NormalizeAudioMIME corrects the container type Drive reports for 3gpp call
// recordings into the audio type the model understands. Every other type
// passes through verbatim.
func NormalizeAudioMIME(mime string) string {
	switch mime {
	case "video/3gpp", "audio/3gpp":
		return "audio/m4a"
	default:
		return mime
	}
}

// FileName is the name of the generated report inside the reports folder.
func FileName(displayName string) string {
	return "Reporte - " + displayName + ".txt"
}

// Document renders the flat text report: original filename, timestamp, then
// the three text blocks.
func Document(fileName string, generatedAt time.Time, transcript, general, business string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "REPORTE DE LLAMADA\n")
	fmt.Fprintf(&b, "Archivo: %s\n", fileName)
	fmt.Fprintf(&b, "Fecha: %s\n", generatedAt.Format(timestampLayout))

	section := func(title, body string) {
		fmt.Fprintf(&b, "\n=== %s ===\n\n%s\n", title, strings.TrimSpace(body))
	}
	section("TRANSCRIPCIÓN", transcript)
	section("RESUMEN GENERAL", general)
	section("RESUMEN DE NEGOCIO", business)

	return b.String()
}
