// Package buildlog reads and writes the persisted export plan as a
// line-oriented text log.
//
// The log is both an audit trail of what was exported and the channel
// through which an operator bumps a single variant's revision: edit
// the revision property of one variant line and re-export. Comment
// lines (starting with '#') are written as documentation and skipped
// on read. Soft variants are recorded as comments only and are never
// parsed back; they are re-derived from project configuration on
// every run.
package buildlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"apkplan/internal/manifest"
	"apkplan/internal/planner"
)

// ErrFormat indicates the build log does not follow the expected line
// grammar.
var ErrFormat = errors.New("invalid build log format")

// Variant-line property keys.
const (
	propMinSDK       = "minSdkVersion"
	propScreens      = "screens"
	propGL           = "glEsVersion"
	propRevision     = "revision"
	propABI          = "abi"
	propSplitDensity = "splitDensity"
	propLocales      = "locales"
)

const fileHeader = `# Multi-APK BUILD LOG.
# This file serves two purposes:
# - A log of what was built, showing what went in each APK and their properties.
#   You can refer to this if you get a bug report for a specific versionCode.
# - A way to update builds through minor revisions for specific APKs.
# Only edit manually to change the revision property for builds you wish to respin.
# Note that all APKs will be regenerated all the time.
`

const formatHeader = `# The format of the following lines is:
# <name>:<property1>;<property2>;<property3>;...
# Properties are written as <name>=<value>
`

// Write serializes the plan to w.
func Write(w io.Writer, plan planner.Plan) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(fileHeader)
	fmt.Fprintf(bw, "package=%s\n", plan.Package)
	fmt.Fprintf(bw, "versionCode=%d\n", plan.VersionCode)
	bw.WriteString(formatHeader)

	for _, v := range plan.Variants {
		bw.WriteString(variantLine(v))
		bw.WriteByte('\n')

		// Soft variants share the variant's build slot and cannot be
		// respun individually, so they are logged as comments and
		// never read back.
		if len(v.SoftVariants) > 0 {
			bw.WriteString(" # Soft Variants -- DO NOT UNCOMMENT:\n")
			for _, sv := range v.SoftVariants {
				fmt.Fprintf(bw, " # %s-%s: %s\n", v.Name(), sv.Key, sv.Value)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write build log: %w", err)
	}
	return nil
}

// variantLine renders one variant in the name:key=value;... grammar.
func variantLine(v planner.Variant) string {
	var b strings.Builder
	b.WriteString(v.Name())
	b.WriteByte(':')

	props := []string{
		fmt.Sprintf("%s=%d", propMinSDK, v.MinSDK),
		fmt.Sprintf("%s=%s", propScreens, v.Screens),
		fmt.Sprintf("%s=0x%x", propGL, v.GLESVersion),
		fmt.Sprintf("%s=%d", propRevision, v.Revision),
		fmt.Sprintf("%s=%t", propSplitDensity, v.SplitDensity),
	}
	if len(v.LocaleFilters) > 0 {
		props = append(props, fmt.Sprintf("%s=%s", propLocales, strings.Join(v.LocaleFilters, ",")))
	}
	if v.ABI != "" {
		props = append(props, fmt.Sprintf("%s=%s", propABI, v.ABI))
	}

	b.WriteString(strings.Join(props, ";"))
	return b.String()
}

// Read parses a build log from r. Blank and comment lines are
// skipped. The first data line is the package, the second the
// versionCode, and every following line one variant record in file
// order. Read does not re-validate differentiation; that only happens
// on freshly computed plans.
func Read(r io.Reader) (planner.Plan, error) {
	var plan planner.Plan

	scanner := bufio.NewScanner(r)
	lineIndex := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch lineIndex {
		case 0:
			value, err := headerValue(line, "package", lineNo)
			if err != nil {
				return planner.Plan{}, err
			}
			plan.Package = value
		case 1:
			value, err := headerValue(line, "versionCode", lineNo)
			if err != nil {
				return planner.Plan{}, err
			}
			code, err := strconv.Atoi(value)
			if err != nil {
				return planner.Plan{}, fmt.Errorf("%w: line %d: versionCode %q is not a number", ErrFormat, lineNo, value)
			}
			plan.VersionCode = code
		default:
			v, err := parseVariantLine(line, lineNo)
			if err != nil {
				return planner.Plan{}, err
			}
			v.BuildSlot = lineIndex - 2
			plan.Variants = append(plan.Variants, v)
		}
		lineIndex++
	}
	if err := scanner.Err(); err != nil {
		return planner.Plan{}, fmt.Errorf("failed to read build log: %w", err)
	}
	if lineIndex < 2 {
		return planner.Plan{}, fmt.Errorf("%w: missing package/versionCode header", ErrFormat)
	}

	return plan, nil
}

func headerValue(line, key string, lineNo int) (string, error) {
	k, value, found := strings.Cut(line, "=")
	if !found || k != key {
		return "", fmt.Errorf("%w: line %d: expected %s=<value>, got %q", ErrFormat, lineNo, key, line)
	}
	return value, nil
}

func parseVariantLine(line string, lineNo int) (planner.Variant, error) {
	name, propPart, found := strings.Cut(line, ":")
	if !found {
		return planner.Variant{}, fmt.Errorf("%w: line %d: expected <name>:<properties>, got %q", ErrFormat, lineNo, line)
	}

	v := planner.Variant{RelativePath: name}
	for _, prop := range strings.Split(propPart, ";") {
		key, value, found := strings.Cut(prop, "=")
		if !found {
			return planner.Variant{}, fmt.Errorf("%w: line %d: expected <name>=<value>, got %q", ErrFormat, lineNo, prop)
		}

		switch key {
		case propMinSDK:
			n, err := strconv.Atoi(value)
			if err != nil {
				return planner.Variant{}, fmt.Errorf("%w: line %d: invalid %s value %q", ErrFormat, lineNo, key, value)
			}
			v.MinSDK = n
		case propScreens:
			s, ok := manifest.ParseScreenSupport(value)
			if !ok {
				return planner.Variant{}, fmt.Errorf("%w: line %d: invalid %s value %q", ErrFormat, lineNo, key, value)
			}
			v.Screens = s
		case propGL:
			n, err := strconv.ParseInt(strings.TrimPrefix(value, "0x"), 16, 64)
			if err != nil {
				return planner.Variant{}, fmt.Errorf("%w: line %d: invalid %s value %q", ErrFormat, lineNo, key, value)
			}
			v.GLESVersion = int(n)
		case propRevision:
			n, err := strconv.Atoi(value)
			if err != nil {
				return planner.Variant{}, fmt.Errorf("%w: line %d: invalid %s value %q", ErrFormat, lineNo, key, value)
			}
			if n < 0 || n >= planner.MaxRevisions {
				return planner.Variant{}, fmt.Errorf("%w: line %d: valid revision values are 0-%d",
					planner.ErrTooManyRevisions, lineNo, planner.MaxRevisions-1)
			}
			v.Revision = n
		case propSplitDensity:
			v.SplitDensity = value == "true"
		case propLocales:
			v.LocaleFilters = strings.Split(value, ",")
		case propABI:
			v.ABI = value
			// The name token carries an ABI suffix for split
			// variants; strip it back to the project path.
			v.RelativePath = strings.TrimSuffix(name, "-"+value)
		default:
			return planner.Variant{}, fmt.Errorf("%w: line %d: unknown property %q", ErrFormat, lineNo, key)
		}
	}

	return v, nil
}
