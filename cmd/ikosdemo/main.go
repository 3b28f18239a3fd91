// IKOS CLI - MPC-in-the-head Arithmetic Core Demo
//
// Usage:
//   ikosdemo prove       Run the example circuit as a prover and commit
//   ikosdemo verify      Prove, commit, and replay as a verifier
//   ikosdemo tamper      Same as verify, but corrupt a committed entry first
//   ikosdemo benchmark   Run per-gate performance benchmarks
//   ikosdemo help        Show this help
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/luxfi/ikos/ikos"
	"github.com/luxfi/ikos/ikos/circuit"
	"github.com/luxfi/ikos/ikos/share"
)

const demoRandTapeLenBytes = 64

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "prove":
		cmdProve()
	case "verify":
		cmdVerify()
	case "tamper":
		cmdTamper()
	case "benchmark":
		cmdBenchmark()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`IKOS - MPC-in-the-head Arithmetic Core

Usage:
  ikosdemo <command>

Commands:
  prove       Run the example circuit as a prover and commit
  verify      Prove, commit, and replay as a verifier
  tamper      Same as verify, but corrupt a committed entry first
  benchmark   Run per-gate performance benchmarks
  help        Show this help

For production use, see the Go library at github.com/luxfi/ikos`)
}

// exampleInputs returns the two secret-shared 32-bit words the demo
// feeds through Example32BitAdderAnd: party 0 holds the whole clear
// value, parties 1 and 2 hold zero, so clear(x) = x[0].
func exampleInputs() (x, y [3]uint32) {
	return [3]uint32{0xC0FFEE, 0, 0}, [3]uint32{0x1234, 0, 0}
}

func statementFingerprint(x, y [3]uint32) [32]byte {
	buf := make([]byte, 0, 8)
	for _, w := range []uint32{x[0], y[0]} {
		buf = append(buf, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
	}
	return ikos.Keccak256(buf)
}

func cmdProve() {
	x, y := exampleInputs()
	fingerprint := statementFingerprint(x, y)
	fmt.Printf("Statement fingerprint: 0x%s\n\n", hex.EncodeToString(fingerprint[:]))

	cfg, err := circuit.NewConfig(demoRandTapeLenBytes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Running example circuit as prover...")
	start := time.Now()
	prover, err := circuit.NewProverCircuit(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	result, err := prover.Example32BitAdderAnd(x, y)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	digests := prover.Commit()
	fmt.Printf("Done in %v\n\n", elapsed)
	fmt.Printf("Result shares: %v (clear = 0x%x)\n\n", result.Value, clearOf(result.Value))
	fmt.Println("Committed views:")
	for i, d := range digests {
		fmt.Printf("  party %d: 0x%s\n", i, hex.EncodeToString(d[:]))
	}
}

func clearOf(shares [3]uint32) uint32 {
	return shares[0] ^ shares[1] ^ shares[2]
}

func cmdVerify() {
	runVerify(false)
}

func cmdTamper() {
	runVerify(true)
}

func runVerify(tamper bool) {
	x, y := exampleInputs()

	cfg, err := circuit.NewConfig(demoRandTapeLenBytes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("1. Proving...")
	prover, err := circuit.NewProverCircuit(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := prover.Example32BitAdderAnd(x, y); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("   Done.")

	views := prover.Views()
	if tamper {
		fmt.Println("\n2. Tampering with party 0's committed view (flipping one bit)...")
		views[0].OutData32[1] ^= 1
	} else {
		fmt.Println("\n2. Views disclosed to verifier unchanged.")
	}

	fmt.Println("\n3. Replaying as verifier...")
	start := time.Now()
	verifier := circuit.NewVerifierCircuit(cfg, views)
	err = verifier.Verify([2]uint32{x[0], x[1]}, [2]uint32{y[0], y[1]})
	elapsed := time.Since(start)

	if err != nil {
		fmt.Printf("   REJECTED after %v: %v\n", elapsed, err)
		if tamper {
			os.Exit(0)
		}
		os.Exit(1)
	}
	fmt.Printf("   ACCEPTED in %v\n", elapsed)
	if tamper {
		fmt.Println("\nExpected rejection but the proof was accepted.")
		os.Exit(1)
	}
}

func cmdBenchmark() {
	fmt.Println("IKOS Gate Benchmarks")
	fmt.Println("====================")
	fmt.Println()

	const iterations = 1000
	// And, Add, and BitOr (which internally calls And again) each draw one
	// tape word per party per iteration: 3 gate-words per iteration, 4
	// bytes per word, plus headroom.
	const tapeBytes = iterations*12 + 64
	ctx := make([]*ikos.Context, 3)
	for i := range ctx {
		seed, err := ikos.NewRandTapeSeed(nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		ctx[i] = ikos.NewContextWithSeed(seed, tapeBytes, false)
	}

	x := share.NewPVarShare([3]uint32{1, 0, 0}, ctx)
	y := share.NewPVarShare([3]uint32{1, 0, 0}, ctx)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_ = x.Xor(&y)
	}
	xorTime := time.Since(start) / iterations
	fmt.Printf("Xor:    %v per gate\n", xorTime)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := x.And(&y); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	andTime := time.Since(start) / iterations
	fmt.Printf("And:    %v per gate\n", andTime)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := x.Add(&y); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	addTime := time.Since(start) / iterations
	fmt.Printf("Add:    %v per gate\n", addTime)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := x.BitOr(&y); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	orTime := time.Since(start) / iterations
	fmt.Printf("BitOr:  %v per gate\n", orTime)
}
