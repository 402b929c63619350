// SPDX-License-Identifier: MIT

package narrate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyBannerInside  = "A singularity lies inside the contour. The integral may be nonzero."
	keyBannerOutside = "No singularity lies inside the contour. If the function is analytic there, the integral must be zero."

	keyExplainEntire = "The chosen function is analytic on the whole plane and has no singularity inside the contour. By the Cauchy theorem the closed contour integral is zero."
	keyExplainPole   = "The function has a singularity inside the contour, so the Cauchy theorem does not apply and the integral can be nonzero."
	keyExplainHedge  = "The chosen function is analytic on this contour, but its properties cannot be confirmed symbolically. If no singularity lies inside the path, the integral should be zero."

	keyResult      = "Result: %s"
	keyNearZero    = "The result is close to zero, consistent with the Cauchy theorem."
	keyNotNearZero = "The result is not zero, possibly because of a singularity or numerical error."

	keyOutside = "The extra points (green) lie outside the closed contour C. The integral depends only on f on and inside C, so values of f at those points do not affect it."

	keySurfaceUndefined = "The function is undefined at some points of this domain."
	keySurfaceRange     = "|f(z)| ranges from %.3f to %.3f on the grid."
)

var entries = []struct {
	key string
	id  string
}{
	{keyBannerInside, "Terdapat singularitas di dalam lintasan. Nilai integral mungkin tidak nol."},
	{keyBannerOutside, "Tidak ada singularitas di dalam lintasan. Jika fungsi analitik di sana, integral harus nol."},
	{keyExplainEntire, "Fungsi yang dipilih analitik di seluruh bidang dan tidak memiliki singularitas di dalam lintasan. Menurut Teorema Cauchy, integral pada lintasan tertutup bernilai nol."},
	{keyExplainPole, "Fungsi memiliki singularitas di dalam lintasan, sehingga Teorema Cauchy tidak berlaku dan integral dapat tidak nol."},
	{keyExplainHedge, "Fungsi yang dipilih analitik pada lintasan ini, tetapi sifatnya tidak dapat dipastikan secara simbolik. Jika tidak ada singularitas di dalam lintasan, integral seharusnya nol."},
	{keyResult, "Hasil: %s"},
	{keyNearZero, "Hasil mendekati nol, sesuai dengan Teorema Cauchy."},
	{keyNotNearZero, "Hasil tidak nol, kemungkinan karena singularitas atau galat numerik."},
	{keyOutside, "Titik tambahan (hijau) berada di luar lintasan tertutup C. Integral hanya bergantung pada f di sepanjang dan di dalam C, sehingga nilai f di titik tersebut tidak memengaruhinya."},
	{keySurfaceUndefined, "Fungsi tidak terdefinisi di beberapa titik pada domain ini."},
	{keySurfaceRange, "|f(z)| berkisar dari %.3f hingga %.3f pada grid."},
}

// supported lists the catalog languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.Indonesian}

// newCatalog builds the message catalog for all supported languages.
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := b.SetString(language.English, e.key, e.key); err != nil {
			return nil, err
		}
		if err := b.SetString(language.Indonesian, e.key, e.id); err != nil {
			return nil, err
		}
	}
	return b, nil
}
