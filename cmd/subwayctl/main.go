// Command subwayctl queries and serves a subway network.
//
//	subwayctl --network network.yml route --from 1 --to 4 --age 21
//	subwayctl --network network.yml line 1
//	subwayctl --network network.yml network
//	subwayctl --config config.yml serve
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
