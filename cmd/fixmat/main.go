// SPDX-License-Identifier: MIT

// Command fixmat inspects fixed-shape matrices stored as YAML row lists.
//
//	fixmat show      --file m.yaml --shape 2x3
//	fixmat transpose --file m.yaml --shape 2x3 --output yaml
//	fixmat shapes
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
