package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichailMastanov/localization-example/pkg/i18n"
)

func TestFSAdapterLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"translations/labels.properties":    {Data: []byte("en=English\nfi=suomi\n")},
		"translations/labels_en.properties": {Data: []byte("yourName=Your name\n")},
		"translations/labels_fi.properties": {Data: []byte("yourName=Nimesi\n")},
		"translations/labels_de.yaml":       {Data: []byte("yourName: Dein Name\n")},
		"translations/README.md":            {Data: []byte("not a bundle")},
	}

	adapter := i18n.NewFSAdapter(fsys, "translations")
	require.NotNil(t, adapter)

	catalog, err := adapter.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "English", catalog.Base["en"])
	assert.Equal(t, "Your name", catalog.Locales["en"]["yourName"])
	assert.Equal(t, "Nimesi", catalog.Locales["fi"]["yourName"])
	assert.Equal(t, "Dein Name", catalog.Locales["de"]["yourName"])
	assert.Len(t, catalog.Locales, 3)
}

func TestFSAdapterRegionSuffix(t *testing.T) {
	fsys := fstest.MapFS{
		"tr/labels_pt_BR.properties": {Data: []byte("yourName=Seu nome\n")},
	}

	catalog, err := i18n.NewFSAdapter(fsys, "tr").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seu nome", catalog.Locales["pt-br"]["yourName"])
}

func TestFSAdapterNoBundles(t *testing.T) {
	fsys := fstest.MapFS{
		"tr/README.md": {Data: []byte("nothing here")},
	}

	_, err := i18n.NewFSAdapter(fsys, "tr").Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrNoTranslations)
}

func TestFSAdapterMalformedBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"tr/labels_en.properties": {Data: []byte("no separator on this line\n")},
	}

	_, err := i18n.NewFSAdapter(fsys, "tr").Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
}

func TestFSAdapterMissingDirectory(t *testing.T) {
	_, err := i18n.NewFSAdapter(fstest.MapFS{}, "missing").Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
}

func TestNewFSAdapterInvalidArgs(t *testing.T) {
	assert.Nil(t, i18n.NewFSAdapter(nil, "tr"))
	assert.Nil(t, i18n.NewFSAdapter(fstest.MapFS{}, ""))
}

func TestTranslatorWithFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"tr/labels.properties":    {Data: []byte("appTitle=Demo\n")},
		"tr/labels_en.properties": {Data: []byte("helloButton=Say hello\n")},
	}

	translator, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(fsys, "tr"))
	require.NoError(t, err)

	assert.Equal(t, "Say hello", translator.T("en", "helloButton"))
	assert.Equal(t, "Demo", translator.T("en", "appTitle"))
}
