package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docsdk/go-dictsync/pkg/catalog"
	"github.com/docsdk/go-dictsync/pkg/testsupp"
)

func TestBuild_HyphenPresence(t *testing.T) {
	testsupp.InitLog(t)
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "hyphen presence",
		Files: map[string]string{
			"english/english.json":     `{"codes": ["en", "en-US"]}`,
			"english/hyph_english.dic": "dummy",
			"french/french.json":       `{"codes": ["fr"]}`,
		},
	})

	c, err := catalog.Build(dictDir)
	require.NoError(t, err)
	require.Len(t, c, 3)
	require.Equal(t, catalog.Entry{Name: "english", Hyphen: true}, c["en"])
	require.Equal(t, catalog.Entry{Name: "english", Hyphen: true}, c["en-US"])
	require.Equal(t, catalog.Entry{Name: "french", Hyphen: false}, c["fr"])
}

func TestBuild_SkipsNonPackages(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "skips non packages",
		Files: map[string]string{
			"german/german.json": `{"codes": ["de"]}`,
			"incomplete/":        "",
			"README.txt":         "not a dictionary",
		},
	})

	c, err := catalog.Build(dictDir)
	require.NoError(t, err)
	require.Len(t, c, 1)
	require.Equal(t, catalog.Entry{Name: "german", Hyphen: false}, c["de"])
}

func TestBuild_MalformedDescriptor(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "malformed descriptor",
		Files: map[string]string{
			"broken/broken.json": `{"codes": ["en"`,
		},
	})

	_, err := catalog.Build(dictDir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid JSON")
}

func TestBuild_MissingCodes(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "missing codes",
		Files: map[string]string{
			"nocodes/nocodes.json": `{"name": "nocodes"}`,
		},
	})

	_, err := catalog.Build(dictDir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "codes")
}

func TestBuild_CoercesCodesToStrings(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "coerces codes",
		Files: map[string]string{
			"mixed/mixed.json": `{"codes": ["en", 1033, true]}`,
		},
	})

	c, err := catalog.Build(dictDir)
	require.NoError(t, err)
	require.Contains(t, c, catalog.LangCode("en"))
	require.Contains(t, c, catalog.LangCode("1033"))
	require.Contains(t, c, catalog.LangCode("true"))
}

func TestBuild_LastWriterWins(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "last writer wins",
		Files: map[string]string{
			"aaa/aaa.json": `{"codes": ["en"]}`,
			"zzz/zzz.json": `{"codes": ["en"]}`,
		},
	})

	c, err := catalog.Build(dictDir)
	require.NoError(t, err)
	require.Equal(t, "zzz", c["en"].Name)
}

func TestBuild_MissingRoot(t *testing.T) {
	_, err := catalog.Build(filepath.Join("testdata", "does-not-exist"))
	require.Error(t, err)
}

func TestMarshal_SortedAndCompact(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "marshal sorted",
		Files: map[string]string{
			"english/english.json":     `{"codes": ["en-US", "en"]}`,
			"english/hyph_english.dic": "dummy",
		},
	})

	c, err := catalog.Build(dictDir)
	require.NoError(t, err)

	data, err := c.Marshal()
	require.NoError(t, err)
	require.Equal(t,
		`{"en":{"name":"english","hyphen":true},"en-US":{"name":"english","hyphen":true}}`,
		string(data))
}

func TestMarshal_Deterministic(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name: "marshal deterministic",
		Files: map[string]string{
			"english/english.json": `{"codes": ["en", "en-US", "en-GB"]}`,
			"russian/russian.json": `{"codes": ["ru"]}`,
			"german/german.json":   `{"codes": ["de", "de-AT"]}`,
		},
	})

	first, err := catalog.Build(dictDir)
	require.NoError(t, err)
	firstData, err := first.Marshal()
	require.NoError(t, err)

	second, err := catalog.Build(dictDir)
	require.NoError(t, err)
	secondData, err := second.Marshal()
	require.NoError(t, err)

	require.Equal(t, string(firstData), string(secondData))
}

func TestReadDescriptor_NotFound(t *testing.T) {
	dictDir := testsupp.InitTestTree(t, testsupp.TreeTestCase{
		Name:  "descriptor not found",
		Files: map[string]string{"empty/": ""},
	})

	_, err := catalog.ReadDescriptor(dictDir, "empty")
	require.ErrorIs(t, err, catalog.ErrNoDescriptor)
}

func TestPaths(t *testing.T) {
	require.Equal(t,
		filepath.Join("root", "english", "english.json"),
		catalog.ConfigPath("root", "english"))
	require.Equal(t,
		filepath.Join("root", "english", "hyph_english.dic"),
		catalog.HyphenPath("root", "english"))
}
