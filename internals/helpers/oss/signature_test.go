package helper

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeBase64Image(t *testing.T) {
	t.Parallel()

	raw := pngBytes(t, 40, 20)
	enc := base64.StdEncoding.EncodeToString(raw)

	got, err := DecodeBase64Image(enc)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	got, err = DecodeBase64Image("data:image/png;base64," + enc)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	_, err = DecodeBase64Image("")
	require.Error(t, err)

	_, err = DecodeBase64Image("%%% not base64 %%%")
	require.Error(t, err)
}

func TestConvertSignatureToWebP(t *testing.T) {
	t.Parallel()

	out, err := ConvertSignatureToWebP(pngBytes(t, 40, 20))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 40, img.Bounds().Dx())
}

func TestConvertSignatureDownscalesOversized(t *testing.T) {
	t.Parallel()

	out, err := ConvertSignatureToWebP(pngBytes(t, 2400, 600))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.LessOrEqual(t, img.Bounds().Dx(), 1200)
	require.LessOrEqual(t, img.Bounds().Dy(), 600)
}

func TestConvertSignatureRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ConvertSignatureToWebP([]byte("definitely not an image"))
	require.Error(t, err)
}
