// Command rbt builds a red-black tree from the integers given on the
// command line and prints its serialized forms.
//
//	rbt 10 20 30
//	rbt -order=prefix 5 3 8 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"redblack/rbtree"
)

func main() {
	order := flag.String("order", "all", "traversal to print: infix, prefix, postfix or all")
	flag.Parse()

	keys := flag.Args()
	if len(keys) == 0 {
		log.Fatal("no keys given")
	}

	// ---------------- Build ----------------

	tree := rbtree.New()
	for _, arg := range keys {
		k, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("invalid key %q: %v", arg, err)
		}
		if err := tree.Insert(k); err != nil {
			if errors.Is(err, rbtree.ErrDuplicateKey) {
				log.Printf("[rbt] skipping duplicate key %d", k)
				continue
			}
			log.Fatalf("insert %d failed: %v", k, err)
		}
	}

	// ---------------- Report ----------------

	switch *order {
	case "infix":
		fmt.Println(tree.ToInfixString())
	case "prefix":
		fmt.Println(tree.ToPrefixString())
	case "postfix":
		fmt.Println(tree.ToPostfixString())
	case "all":
		fmt.Printf("size:    %d\n", tree.Size())
		if min, err := tree.Min(); err == nil {
			max, _ := tree.Max()
			fmt.Printf("min/max: %d/%d\n", min, max)
		}
		fmt.Printf("infix:   %q\n", tree.ToInfixString())
		fmt.Printf("prefix:  %q\n", tree.ToPrefixString())
		fmt.Printf("postfix: %q\n", tree.ToPostfixString())
	default:
		log.Fatalf("unknown order %q", *order)
	}
}
