package buildlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apkplan/internal/manifest"
	"apkplan/internal/planner"
)

func testPlan() planner.Plan {
	return planner.Plan{
		Package:     "com.example.app",
		VersionCode: 12,
		Variants: []planner.Variant{
			{
				MinSDK:       7,
				Screens:      manifest.ScreenSupport{Normal: true, Resizeable: true, AnyDensity: true},
				RelativePath: "app",
				BuildSlot:    0,
			},
			{
				MinSDK:        7,
				Screens:       manifest.ScreenSupport{Large: true, XLarge: true},
				GLESVersion:   0x20000,
				ABI:           "x86",
				SplitDensity:  true,
				LocaleFilters: []string{"en", "fr"},
				RelativePath:  "app-tablet",
				BuildSlot:     1,
				Revision:      3,
			},
		},
	}
}

// persisted strips the fields that are not part of the log grammar
// (project root, soft-variant audit trail) so round-trip comparisons
// only look at what the codec is responsible for.
func persisted(p planner.Plan) planner.Plan {
	for i := range p.Variants {
		p.Variants[i].ProjectRoot = ""
		p.Variants[i].SoftVariants = nil
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	plan := testPlan()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, plan))

	decoded, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, persisted(plan), decoded)
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testPlan()))
	out := buf.String()

	assert.Contains(t, out, "package=com.example.app\n")
	assert.Contains(t, out, "versionCode=12\n")
	assert.Contains(t, out, "app:minSdkVersion=7;screens=normal|resizeable|anyDensity;glEsVersion=0x0;revision=0;splitDensity=false\n")
	assert.Contains(t, out, "app-tablet-x86:minSdkVersion=7;screens=large|xlarge;glEsVersion=0x20000;revision=3;splitDensity=true;locales=en,fr;abi=x86\n")
}

func TestWriteSoftVariantComments(t *testing.T) {
	plan := testPlan()
	plan.Variants[1].SoftVariants = []planner.SoftVariant{
		{Key: "hdpi", Value: "density=hdpi"},
		{Key: "locale-fr", Value: "locale=fr"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, plan))
	out := buf.String()

	assert.Contains(t, out, " # Soft Variants -- DO NOT UNCOMMENT:\n")
	assert.Contains(t, out, " # app-tablet-x86-hdpi: density=hdpi\n")
	assert.Contains(t, out, " # app-tablet-x86-locale-fr: locale=fr\n")

	// Comment-prefixed soft variant lines must never come back as
	// variants on read.
	decoded, err := Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, decoded.Variants, 2)
}

func TestReadSkipsBlankAndCommentLines(t *testing.T) {
	log := `# header comment

package=com.example.app
# interleaved comment
versionCode=3

app:minSdkVersion=4;screens=normal;glEsVersion=0x0;revision=1;splitDensity=false
`
	plan, err := Read(strings.NewReader(log))
	require.NoError(t, err)

	assert.Equal(t, "com.example.app", plan.Package)
	assert.Equal(t, 3, plan.VersionCode)
	require.Len(t, plan.Variants, 1)
	assert.Equal(t, 4, plan.Variants[0].MinSDK)
	assert.Equal(t, 1, plan.Variants[0].Revision)
	assert.Equal(t, 0, plan.Variants[0].BuildSlot)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		log     string
		wantErr error
	}{
		{
			name:    "empty log",
			log:     "# only comments\n",
			wantErr: ErrFormat,
		},
		{
			name:    "missing package key",
			log:     "pkg=com.example.app\nversionCode=1\n",
			wantErr: ErrFormat,
		},
		{
			name:    "non-numeric versionCode",
			log:     "package=com.example.app\nversionCode=one\n",
			wantErr: ErrFormat,
		},
		{
			name:    "variant line without colon",
			log:     "package=com.example.app\nversionCode=1\nminSdkVersion=4\n",
			wantErr: ErrFormat,
		},
		{
			name:    "unknown property",
			log:     "package=com.example.app\nversionCode=1\napp:wat=1\n",
			wantErr: ErrFormat,
		},
		{
			name:    "revision at bound",
			log:     "package=com.example.app\nversionCode=1\napp:minSdkVersion=4;screens=normal;glEsVersion=0x0;revision=100;splitDensity=false\n",
			wantErr: planner.ErrTooManyRevisions,
		},
		{
			name:    "bad screens encoding",
			log:     "package=com.example.app\nversionCode=1\napp:minSdkVersion=4;screens=huge;glEsVersion=0x0;revision=0;splitDensity=false\n",
			wantErr: ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.log))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
