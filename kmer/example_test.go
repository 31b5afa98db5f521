package kmer_test

import (
	"fmt"

	"github.com/mmcharchuta/NaiveR/kmer"
)

// ExampleIndices encodes a short read containing one ambiguous base; the
// three windows overlapping the N are dropped, the rest encode normally.
func ExampleIndices() {
	indices, err := kmer.Indices("ACGTNACGT", 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("indices:", indices)
	fmt.Println("unique: ", kmer.Unique(indices))
	// Output:
	// indices: [6 27 6 27]
	// unique:  [6 27]
}

// ExampleNumKmers sizes the model matrix for 8-mers.
func ExampleNumKmers() {
	rows, _ := kmer.NumKmers(8)
	fmt.Printf("an 8-mer model matrix has %d rows\n", rows)
	// Output:
	// an 8-mer model matrix has 65536 rows
}
