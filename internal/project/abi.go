package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// NativeLibsDirName is the directory under a project root that holds
// per-ABI native library folders.
const NativeLibsDirName = "libs"

// nativeLibSuffix marks a native library file inside an ABI folder.
const nativeLibSuffix = ".so"

// ListABIFolders returns the names of folders under <projectRoot>/libs
// that contain at least one native library, sorted lexicographically.
// A missing libs directory yields an empty list, not an error: whether
// an empty ABI split is acceptable is the build tooling's call.
func ListABIFolders(projectRoot string) ([]string, error) {
	libsDir := filepath.Join(projectRoot, NativeLibsDirName)
	entries, err := os.ReadDir(libsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", libsDir, err)
	}

	var abis []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		hasLib, err := containsNativeLib(filepath.Join(libsDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if hasLib {
			abis = append(abis, entry.Name())
		}
	}

	sort.Strings(abis)
	return abis, nil
}

func containsNativeLib(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), nativeLibSuffix) {
			return true, nil
		}
	}
	return false, nil
}
