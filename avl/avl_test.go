// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"3307"}, {"0915"}, {"7712"}, {"2461"}, {"5098"},
		{"6623"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"4410"}, {"0287"}, {"9133"}, {"6045"}, {"1802"},
		{"1806"}, {"1811"}, {"1809"}, {"1807"}, {"2930"},
		{"2501"}, {"2777"}, {"3158"}, {"2719"}, {"8860"},
		{"4410"}, {"0287"}, {"9133"}, {"6045"}, {"2501"},

		{"2501"}, {"2501"}, {"2501"}, {"2501"}, {"2501"},
		{"2501"}, {"2501"}, {"2501"}, {"2501"}, {"2501"},
		{"2501"}, {"2501"}, {"2501"}, {"2501"}, {"2501"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"9072"}, {"2545"}, {"4165"}, {"4725"}, {"0368"},
		{"5730"}, {"4190"}, {"0254"}, {"1320"}, {"9165"},
		{"2072"}, {"7675"}, {"1347"}, {"9086"}, {"7091"},
		{"1462"}, {"6693"}, {"1023"}, {"8869"}, {"4419"},
		{"0773"}, {"4041"}, {"6773"}, {"9673"}, {"5925"},
		{"5444"}, {"2566"}, {"1084"}, {"9095"}, {"5238"},
		{"0185"}, {"8550"}, {"0441"}, {"7037"}, {"9224"},
		{"0030"}, {"7232"}, {"1966"}, {"0040"}, {"3146"},
		{"6452"}, {"4083"}, {"9023"}, {"7503"}, {"1307"},
		{"2330"}, {"5539"}, {"9538"}, {"0299"}, {"9207"},
		{"6028"}, {"9377"}, {"2838"}, {"1807"}, {"8416"},
		{"2998"}, {"3119"}, {"2522"}, {"5805"}, {"4350"},
		{"8580"}, {"6748"}, {"4469"}, {"2953"}, {"8806"},
		{"3477"}, {"9654"}, {"5352"}, {"5675"}, {"8803"},
		{"1646"}, {"6364"}, {"4050"}, {"3051"}, {"1441"},
		{"7934"}, {"3299"}, {"4119"}, {"2078"}, {"5961"},
		{"4410"}, {"9129"}, {"8402"}, {"0546"}, {"4923"},
		{"0786"}, {"0619"}, {"2214"}, {"1051"}, {"2053"},
		{"6304"}, {"3025"}, {"8778"}, {"7230"}, {"6839"},
		{"5965"}, {"9222"}, {"4517"}, {"6770"}, {"9479"},
		{"4059"}, {"0997"}, {"1718"}, {"3098"}, {"9478"},
		{"8485"}, {"2040"}, {"2399"}, {"7715"}, {"8529"},
		{"0455"}, {"2585"}, {"0974"}, {"0441"}, {"1619"},
		{"2959"}, {"4679"}, {"9114"}, {"8591"}, {"4736"},
		{"6533"}, {"8738"}, {"5997"}, {"2346"}, {"5069"},
		{"4112"}, {"3335"}, {"4697"}, {"8040"}, {"6982"},
		{"1356"}, {"1123"}, {"0415"}, {"2757"}, {"0273"},
		{"3624"}, {"7041"}, {"6350"}, {"2687"}, {"1497"},
		{"6557"}, {"4257"}, {"4412"}, {"0222"}, {"0492"},
		{"3459"}, {"4446"}, {"9134"}, {"7585"}, {"8014"},
		{"2966"}, {"6938"}, {"4042"}, {"9011"}, {"4913"},
		{"7236"}, {"7801"}, {"9329"}, {"1585"}, {"6864"},
		{"0601"}, {"7152"}, {"1052"}, {"3871"}, {"2250"},
		{"0874"}, {"2155"}, {"4218"}, {"6231"}, {"6375"},
		{"3934"}, {"7691"}, {"2883"}, {"9322"}, {"9981"},
		{"1568"}, {"9814"}, {"2744"}, {"8294"}, {"9437"},
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// ascending input is the worst case for an unbalanced tree
func TestListAscending(t *testing.T) {
	addList := make([]stringItem, 0, 500)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, stringItem{fmt.Sprintf("%04d", i)})
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListDescending(t *testing.T) {
	addList := make([]stringItem, 0, 500)
	for i := cap(addList); i > 0; i -= 1 {
		addList = append(addList, stringItem{fmt.Sprintf("%04d", i)})
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// check all invariants and print the tree on failure
func checkTree(t *testing.T, tree *avl.Tree, title string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		b := &bytes.Buffer{}
		depth := tree.Print(b)
		t.Logf("depth: %d\n%s", depth, b.String())
		t.Fatalf("%s: inconsistent tree: %s", title, err)
	}
	checkHeightBound(t, tree, title)
}

// an AVL tree of n items is never higher than about 1.44·log₂(n+2)
func checkHeightBound(t *testing.T, tree *avl.Tree, title string) {
	t.Helper()
	n := tree.Size()
	limit := 1.4405*math.Log2(float64(n+2)) - 1
	if float64(tree.Height()) > limit {
		t.Fatalf("%s: height: %d exceeds: %.2f for %d items", title, tree.Height(), limit, n)
	}
}

func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			if _, err := tree.Insert(key); nil != err {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
		}
		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			if dv != key {
				t.Fatalf("delete returned: %q  expected: %q", dv, key)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			if dv != key {
				t.Fatalf("delete returned: %q  expected: %q", dv, key)
			}
		}
		if !tree.IsEmpty() {
			b := &bytes.Buffer{}
			depth := tree.Print(b)
			t.Logf("depth: %d\n%s", depth, b.String())
			t.Fatal("remaining nodes")
		}
		if -1 != tree.Height() {
			t.Fatalf("empty tree height: %d", tree.Height())
		}
	}
}

// check the in-order list against the sorted unique input
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Size() {
		t.Fatalf("tree size: actual: %d  expected: %d", tree.Size(), len(expected))
	}

	items := tree.Keys()
	if len(items) != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", len(items), len(expected))
	}
	for i, item := range items {
		if 0 != item.Compare(stringItem{expected[i]}) {
			t.Fatalf("[%d]: actual: %q  expected: %q", i, item, expected[i])
		}
	}

	if 0 != tree.First().Compare(stringItem{expected[0]}) {
		t.Fatalf("first item: actual: %q  expected: %q", tree.First(), expected[0])
	}
	if 0 != tree.Last().Compare(stringItem{expected[len(expected)-1]}) {
		t.Fatalf("last item: actual: %q  expected: %q", tree.Last(), expected[len(expected)-1])
	}

	// every item except the first has the one before it as predecessor
	for i, key := range expected {
		p, err := tree.Predecessor(stringItem{key})
		if nil != err {
			t.Fatalf("predecessor: %q  error: %s", key, err)
		}
		if 0 == i {
			if nil != p {
				t.Fatalf("predecessor of first: %q  expected none", p)
			}
			continue
		}
		if 0 != p.Compare(stringItem{expected[i-1]}) {
			t.Fatalf("predecessor: %q  actual: %q  expected: %q", key, p, expected[i-1])
		}
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(stringItem{key})
	}

	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Size() {
		t.Fatalf("remaining count not zero: %d", tree.Size())
	}
	if nil != tree.First() || nil != tree.Last() {
		t.Fatalf("empty tree has first: %v or last: %v", tree.First(), tree.Last())
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]stringItem, toDelete)
	present := make(map[stringItem]struct{})

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		added, err := tree.Insert(key)
		if nil != err {
			t.Fatalf("insert: %q  error: %s", key, err)
		}
		_, seen := present[key]
		if added == seen {
			t.Fatalf("insert: %q  added: %v  but already present: %v", key, added, seen)
		}
		present[key] = struct{}{}
	}
	checkTree(t, tree, "random add")

	for _, key := range d {
		_, err := tree.Delete(key)
		_, ok := present[key]
		switch {
		case ok && nil != err:
			t.Fatalf("delete: %q  error: %s", key, err)
		case !ok && nil == err:
			t.Fatalf("delete: %q  succeeded twice", key)
		}
		delete(present, key)

		checkTree(t, tree, "random delete")
		if len(present) != tree.Size() {
			t.Fatalf("size: %d  expected: %d", tree.Size(), len(present))
		}
	}

	// add back the test value
	testKey := stringItem{"500"}
	tree.Insert(testKey)
	checkTree(t, tree, "test key add")

	doTraverse(t, d)

	stored, err := tree.Get(testKey)
	if nil != err {
		t.Fatalf("could not find test key: %q  error: %s", testKey, err)
	}
	if testKey != stored {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", stored, testKey)
	}

	// delete the test value, and check it is no longer in the tree
	value, err := tree.Delete(testKey)
	if nil != err {
		t.Fatalf("delete test key error: %s", err)
	}
	if value != testKey {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testKey)
	}
	if ok, _ := tree.Contains(testKey); ok {
		t.Fatalf("test key not deleted: %q", testKey)
	}
}
