//go:build windows

package tzregistry

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// LocalMachine reads from HKEY_LOCAL_MACHINE. Keys are opened and closed on
// every call.
type LocalMachine struct{}

var _ Reader = LocalMachine{}

func (LocalMachine) SubKeyNames(path string) ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, fmt.Errorf("open %q registry key: %w", path, err)
	}
	defer k.Close()
	return k.ReadSubKeyNames(-1)
}

func (LocalMachine) StringValue(path, name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open %q registry key: %w", path, err)
	}
	defer k.Close()
	s, typ, err := k.GetStringValue(name)
	if err != nil {
		return "", err
	}
	if typ != registry.SZ {
		return "", fmt.Errorf("value %q has type %d, expected REG_SZ: %w", name, typ, registry.ErrUnexpectedType)
	}
	return s, nil
}

func (LocalMachine) BinaryValue(path, name string) ([]byte, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open %q registry key: %w", path, err)
	}
	defer k.Close()
	b, _, err := k.GetBinaryValue(name)
	return b, err
}
