// Package coreprops discovers the address of the local SteelSeries GameSense
// daemon from the coreProps.json file SteelSeries Engine writes on startup.
package coreprops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

const (
	// FileName is the name of the file the engine writes its address to.
	FileName = "coreProps.json"

	vendorDir  = "SteelSeries"
	productDir = "SteelSeries Engine 3"

	darwinRoot = "/Library/Application Support"
)

// props is the subset of coreProps.json we read.
type props struct {
	Address string `json:"address"`
}

// DefaultPath returns the platform location of coreProps.json.
func DefaultPath() (string, error) {
	return defaultPath(runtime.GOOS, os.Getenv)
}

func defaultPath(goos string, getenv func(string) string) (string, error) {
	if goos == "darwin" {
		return filepath.Join(darwinRoot, productDir, FileName), nil
	}
	root := getenv("PROGRAMDATA")
	if root == "" {
		return "", fmt.Errorf("%w: PROGRAMDATA is not set", domain.ErrAddressNotFound)
	}
	return filepath.Join(root, vendorDir, productDir, FileName), nil
}

// Resolve reads coreProps.json at path and returns the daemon base URL,
// e.g. "http://127.0.0.1:51248".
func Resolve(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAddressNotFound, err)
	}
	var p props
	if err := json.Unmarshal(b, &p); err != nil {
		return "", fmt.Errorf("%w: parse %s: %v", domain.ErrAddressNotFound, path, err)
	}
	if p.Address == "" {
		return "", fmt.Errorf("%w: %s has no address field", domain.ErrAddressNotFound, path)
	}
	return BaseURL(p.Address), nil
}

// BaseURL turns a host:port address into the daemon base URL.
func BaseURL(address string) string {
	return "http://" + address
}
