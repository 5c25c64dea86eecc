/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeWordList(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadDictionaryLowercases(t *testing.T) {
	path := writeWordList(t, "Apple\nBANANA\ncherry\n")

	words, err := loadDictionary(path)
	if err != nil {
		t.Fatalf("loadDictionary: %v", err)
	}

	want := Dictionary{"apple", "banana", "cherry"}
	if !slices.Equal(words, want) {
		t.Fatalf("loaded %v, want %v", words, want)
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	_, err := loadDictionary(filepath.Join(t.TempDir(), "nonexistent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDictionaryEmptyFile(t *testing.T) {
	path := writeWordList(t, "")

	_, err := loadDictionary(path)
	if err == nil {
		t.Fatal("expected error for empty word list")
	}
}

func TestDictionaryPick(t *testing.T) {
	words := Dictionary{"apple", "banana", "cherry"}

	for range 50 {
		if !slices.Contains(words, words.pick()) {
			t.Fatal("pick returned a word outside the dictionary")
		}
	}
}
