/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// Dictionary is the pool of candidate secret words, loaded once at
// startup and immutable afterwards.
type Dictionary []string

func loadDictionary(path string) (Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file %s: %w", path, err)
	}
	defer file.Close()

	var words Dictionary

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, strings.ToLower(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("no words found in dictionary file %s", path)
	}

	return words, nil
}

func (d Dictionary) pick() string {
	return d[rand.IntN(len(d))]
}
