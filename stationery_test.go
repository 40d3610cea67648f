package quotepdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildClassicTail frames a document body with a classic fixed-width
// cross-reference table and trailer, the way the drawing backend does.
func buildClassicTail(body []byte, offsets []int) []byte {
	var b bytes.Buffer
	b.Write(body)
	start := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<<\n/Size %d\n/Root %d 0 R\n/Info %d 0 R\n>>\n", len(offsets)+1, len(offsets), len(offsets)-1)
	fmt.Fprintf(&b, "startxref\n%d\n%%%%EOF\n", start)
	return b.Bytes()
}

func TestEmbedObjectsRewritesDocument(t *testing.T) {
	var body bytes.Buffer
	var offsets []int
	add := func(s string) {
		offsets = append(offsets, body.Len())
		body.WriteString(s)
	}
	add("1 0 obj\n<< /Type /Pages >>\nendobj\n")
	add("2 0 obj\n<<\n/XObject <<\n/GOFPDITPL9 0 0 R\n>>\n>>\nendobj\n")
	add("3 0 obj\n<< /Producer (x) >>\nendobj\n")
	add("4 0 obj\n<< /Type /Catalog >>\nendobj\n")
	doc := buildClassicTail(body.Bytes(), offsets)

	hashA := strings.Repeat("a", hashRefWidth)
	hashB := strings.Repeat("b", hashRefWidth)
	objA := []byte("<< /Type /XObject /Next " + hashB + " 0 R >>\nendobj")
	st := &stationery{
		tpls: map[string]string{"/GOFPDITPL9": hashA},
		objs: map[string][]byte{hashA: objA, hashB: []byte("<< /Leaf true >>\nendobj")},
		pos: map[string]map[int]string{
			hashA: {bytes.Index(objA, []byte(hashB)): hashB},
			hashB: {},
		},
	}

	out, err := st.embedObjects(doc)
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	// hashA sorts before hashB, so the template object becomes 5.
	if !bytes.Contains(out, []byte("/GOFPDITPL9 5 0 R")) {
		t.Fatal("resource placeholder not resolved to the template object")
	}
	if !bytes.Contains(out, []byte(fmt.Sprintf("%*d", hashRefWidth, 6))) {
		t.Fatal("embedded hash reference not resolved")
	}
	if bytes.Contains(out, []byte(hashA)) || bytes.Contains(out, []byte(hashB)) {
		t.Fatal("unresolved hash left in output")
	}

	xrefPos, n, err := parseTailXref(out)
	if err != nil {
		t.Fatalf("rewritten tail: %v", err)
	}
	if n != 6 {
		t.Fatalf("expected 6 objects, got %d", n)
	}
	got, err := readXrefOffsets(out, xrefPos, n)
	if err != nil {
		t.Fatalf("rewritten offsets: %v", err)
	}
	for j := 1; j <= n; j++ {
		head := []byte(fmt.Sprintf("%d 0 obj\n", j))
		if !bytes.HasPrefix(out[got[j]:], head) {
			t.Fatalf("offset of object %d points at %q", j, out[got[j]:got[j]+12])
		}
	}

	again, err := st.embedObjects(doc)
	if err != nil {
		t.Fatalf("embed again: %v", err)
	}
	if !bytes.Equal(out, again) {
		t.Fatal("repeated embedding produced different bytes")
	}
}

func TestParseTailXrefRejectsGarbage(t *testing.T) {
	if _, _, err := parseTailXref([]byte("no trailer here")); err == nil {
		t.Fatal("expected missing startxref to be rejected")
	}
	if _, _, err := parseTailXref([]byte("startxref\n999999\n%%EOF\n")); err == nil {
		t.Fatal("expected out-of-range offset to be rejected")
	}
}
