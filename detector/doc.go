// Package detector guesses which character encoding produced a byte buffer.
//
// For a given locale the detector decodes the buffer with every candidate
// encoding registered for that locale and counts characters from the locale's
// diacritic set in each result. The candidate with the highest count wins; when
// nothing scores above zero the detector falls back to its default encoding.
//
//	d := detector.New("UTF-8")
//	enc, err := d.Detect("pl-PL", data)
package detector
