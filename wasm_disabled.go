//go:build !(js && wasm)

package main

import (
	"os"
	"os/user"
)

func getUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func MakeDir(name string) {
	err := os.MkdirAll(name, 0755)
	Check(err)
}
