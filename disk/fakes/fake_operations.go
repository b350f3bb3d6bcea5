package fakes

import (
	"fmt"
	"os"

	"github.com/carveproject/carve/plan"
)

// FakeOperations records every disk operation as a one-line trace entry,
// so tests can assert on exact call ordering, and fails on demand so
// tests can poke at the halt-on-first-failure behavior.
type FakeOperations struct {
	Calls []string

	WipeError       error
	CreateErrors    map[int]error
	RefreshError    error
	SignatureErrors map[string]error
	FormatErrors    map[string]error
	MakeSwapError   error
	EnableSwapError error
	MountErrors     map[string]error
	MkdirErrors     map[string]error
	ChmodErrors     map[string]error
}

func NewFakeOperations() *FakeOperations {
	return &FakeOperations{
		CreateErrors:    map[int]error{},
		SignatureErrors: map[string]error{},
		FormatErrors:    map[string]error{},
		MountErrors:     map[string]error{},
		MkdirErrors:     map[string]error{},
		ChmodErrors:     map[string]error{},
	}
}

func (f *FakeOperations) record(format string, args ...interface{}) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *FakeOperations) Wipe(device string) error {
	f.record("wipe %s", device)
	return f.WipeError
}

func (f *FakeOperations) CreatePartition(device string, index int, size plan.Size, typecode, label string) error {
	f.record("create %s %d %s %s %s", device, index, size.Token(), typecode, label)
	return f.CreateErrors[index]
}

func (f *FakeOperations) Refresh(device string) error {
	f.record("refresh %s", device)
	return f.RefreshError
}

func (f *FakeOperations) WipeSignatures(partition string) error {
	f.record("wipefs %s", partition)
	return f.SignatureErrors[partition]
}

func (f *FakeOperations) Format(partition string, fs plan.Filesystem, label string) error {
	f.record("format %s %s %s", partition, fs, label)
	return f.FormatErrors[partition]
}

func (f *FakeOperations) MakeSwap(partition, label string) error {
	f.record("mkswap %s %s", partition, label)
	return f.MakeSwapError
}

func (f *FakeOperations) EnableSwap(partition string) error {
	f.record("swapon %s", partition)
	return f.EnableSwapError
}

func (f *FakeOperations) Mount(partition, target string) error {
	f.record("mount %s %s", partition, target)
	return f.MountErrors[partition]
}

func (f *FakeOperations) MakeDirectory(path string) error {
	f.record("mkdir %s", path)
	return f.MkdirErrors[path]
}

func (f *FakeOperations) Chmod(path string, mode os.FileMode) error {
	f.record("chmod %o %s", mode, path)
	return f.ChmodErrors[path]
}
