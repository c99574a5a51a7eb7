// Package manifest extracts the facts the export planner needs from an
// AndroidManifest.xml file: package identity, minimum SDK requirement,
// screen support declaration, and GL ES requirement.
//
// The parser is deliberately narrow. It does not validate the manifest
// beyond the handful of fields used for multi-APK differentiation.
package manifest

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileName is the manifest file expected at the root of every project.
const FileName = "AndroidManifest.xml"

// MinSDKCodename marks a minSdkVersion that names a platform codename
// instead of an API level. Codenames have no ordinal value, so variants
// using one cannot be differentiated.
const MinSDKCodename = -1

const androidNS = "http://schemas.android.com/apk/res/android"

// Descriptor holds the normalized manifest facts consumed by the
// planner. It is immutable once parsed.
type Descriptor struct {
	// Package is the application package declared on the manifest root.
	Package string

	// MinSDK is the minimum API level, or MinSDKCodename if the
	// manifest declares a platform codename. Defaults to 1.
	MinSDK int

	// Screens is the declared (or default) screen support set.
	Screens ScreenSupport

	// GLESVersion is the required GL ES version packed as
	// major<<16 | minor, or 0 when no requirement is declared.
	GLESVersion int

	// DeclaresVersionCode is true if the manifest carries an explicit
	// android:versionCode attribute.
	DeclaresVersionCode bool
}

// GLESVersionString renders a packed GL ES version as "major.minor".
func GLESVersionString(packed int) string {
	return fmt.Sprintf("%d.%d", packed>>16, packed&0xffff)
}

type manifestXML struct {
	Package     string `xml:"package,attr"`
	VersionCode string `xml:"http://schemas.android.com/apk/res/android versionCode,attr"`
	UsesSDK     *struct {
		MinSDKVersion string `xml:"http://schemas.android.com/apk/res/android minSdkVersion,attr"`
	} `xml:"uses-sdk"`
	SupportsScreens *struct {
		Small      string `xml:"http://schemas.android.com/apk/res/android smallScreens,attr"`
		Normal     string `xml:"http://schemas.android.com/apk/res/android normalScreens,attr"`
		Large      string `xml:"http://schemas.android.com/apk/res/android largeScreens,attr"`
		XLarge     string `xml:"http://schemas.android.com/apk/res/android xlargeScreens,attr"`
		Resizeable string `xml:"http://schemas.android.com/apk/res/android resizeable,attr"`
		AnyDensity string `xml:"http://schemas.android.com/apk/res/android anyDensity,attr"`
	} `xml:"supports-screens"`
	UsesFeatures []struct {
		GLESVersion string `xml:"http://schemas.android.com/apk/res/android glEsVersion,attr"`
	} `xml:"uses-feature"`
}

// Parse reads and parses the manifest file at the given path.
func Parse(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return parseBytes(data, path)
}

func parseBytes(data []byte, path string) (Descriptor, error) {
	var raw manifestXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return Descriptor{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	d := Descriptor{
		Package:             raw.Package,
		MinSDK:              1,
		Screens:             DefaultScreenSupport(),
		DeclaresVersionCode: raw.VersionCode != "",
	}

	if raw.UsesSDK != nil && raw.UsesSDK.MinSDKVersion != "" {
		v, err := strconv.Atoi(raw.UsesSDK.MinSDKVersion)
		if err != nil {
			// Non-numeric values name a platform codename.
			d.MinSDK = MinSDKCodename
		} else {
			d.MinSDK = v
		}
	}

	if ss := raw.SupportsScreens; ss != nil {
		d.Screens = ScreenSupport{
			Small:      boolAttr(ss.Small, true),
			Normal:     boolAttr(ss.Normal, true),
			Large:      boolAttr(ss.Large, true),
			XLarge:     boolAttr(ss.XLarge, true),
			Resizeable: boolAttr(ss.Resizeable, true),
			AnyDensity: boolAttr(ss.AnyDensity, true),
		}
	}

	for _, f := range raw.UsesFeatures {
		if f.GLESVersion == "" {
			continue
		}
		v, err := parseGLESVersion(f.GLESVersion)
		if err != nil {
			return Descriptor{}, fmt.Errorf("manifest %s: %w", path, err)
		}
		if v > d.GLESVersion {
			d.GLESVersion = v
		}
	}

	return d, nil
}

// parseGLESVersion accepts the packed hex form used in manifests
// (e.g. "0x00020000") as well as a plain decimal value.
func parseGLESVersion(value string) (int, error) {
	var (
		v   int64
		err error
	)
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		v, err = strconv.ParseInt(value[2:], 16, 64)
	} else {
		v, err = strconv.ParseInt(value, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid glEsVersion value %q", value)
	}
	return int(v), nil
}

// boolAttr interprets an optional boolean attribute, falling back to
// def when the attribute is absent.
func boolAttr(value string, def bool) bool {
	switch value {
	case "":
		return def
	case "true":
		return true
	default:
		return false
	}
}
