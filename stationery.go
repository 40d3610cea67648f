package quotepdf

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/phpdave11/gofpdi"

	"github.com/billdoc/quotepdf/layout"
)

// hashRefWidth is the width of the placeholder gofpdi leaves where an object
// reference belongs: a 40-character sha1 hex digest, later overwritten with a
// space-padded object number of the same width.
const hashRefWidth = 40

// stationery holds the letterhead page imported once per Generator: the
// template name the document draws by, the placement computed for the fixed
// page size, and the raw imported objects embedObjects writes into each
// finished document. The importer does not serialize reproducibly, so the
// import runs once and the frozen bytes are reused for every generation.
type stationery struct {
	tpls map[string]string         // template name -> object hash
	objs map[string][]byte         // object hash -> object body
	pos  map[string]map[int]string // object hash -> hash-reference positions

	drawName       string
	sx, sy, tx, ty float64
}

// loadStationery imports page 1 of the letterhead PDF as a form XObject
// template. gofpdi signals parse failures by panicking, so the import is
// fenced with a recover that converts the panic into ErrStationery: a bad
// letterhead is fatal to the generation, not to the process.
func loadStationery(data []byte, page layout.Page) (st *stationery, err error) {
	defer func() {
		if p := recover(); p != nil {
			st = nil
			err = fmt.Errorf("%w: %v", ErrStationery, p)
		}
	}()

	rs := io.ReadSeeker(bytes.NewReader(data))
	imp := gofpdi.NewImporter()
	imp.SetSourceStream(&rs)
	tpl := imp.ImportPage(1, "/MediaBox")

	st = &stationery{
		tpls: imp.PutFormXobjectsUnordered(),
		objs: imp.GetImportedObjectsUnordered(),
		pos:  imp.GetImportedObjHashPos(),
	}
	st.drawName, st.sx, st.sy, st.tx, st.ty = imp.UseTemplate(tpl, 0, 0, page.Width, page.Height)
	return st, nil
}

// register declares the template name on a fresh document so its resource
// dictionary carries an entry for it. The entry's object number is written as
// zero and resolved by embedObjects after output.
func (st *stationery) register(pdf *fpdf.Fpdf) {
	pdf.ImportTemplates(st.tpls)
}

// apply stretches the letterhead over the full page. Must run before any
// content so it sits underneath.
func (st *stationery) apply(pdf *fpdf.Fpdf) {
	pdf.UseImportedTemplate(st.drawName, st.sx, st.sy, st.tx, st.ty)
}

// embedObjects appends the imported letterhead objects to a finished
// document in sorted hash order and rebuilds the cross-reference table.
// Handing the objects to the drawing backend instead would emit them in map
// iteration order, which varies between runs and breaks reproducible output.
func (st *stationery) embedObjects(out []byte) ([]byte, error) {
	xrefPos, n, err := parseTailXref(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStationery, err)
	}
	offsets, err := readXrefOffsets(out, xrefPos, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStationery, err)
	}

	hashes := make([]string, 0, len(st.objs))
	for h := range st.objs {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	ids := make(map[string]int, len(hashes))
	for i, h := range hashes {
		ids[h] = n + 1 + i
	}

	body := append([]byte(nil), out[:xrefPos]...)

	// Resolve the zero placeholder the resource dictionary carries for each
	// template name, shifting the recorded offsets of everything behind it.
	names := make([]string, 0, len(st.tpls))
	for name := range st.tpls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		placeholder := []byte(name + " 0 0 R")
		at := bytes.Index(body, placeholder)
		if at < 0 {
			return nil, fmt.Errorf("%w: resource entry %s not found", ErrStationery, name)
		}
		ref := []byte(fmt.Sprintf("%s %d 0 R", name, ids[st.tpls[name]]))
		grown := len(ref) - len(placeholder)
		body = append(body[:at], append(ref, body[at+len(placeholder):]...)...)
		for j := 1; j <= n; j++ {
			if offsets[j] > at {
				offsets[j] += grown
			}
		}
	}

	// Append the imported objects, overwriting each embedded hash reference
	// with its assigned object number padded to the hash width.
	for _, h := range hashes {
		offsets = append(offsets, len(body))
		body = append(body, fmt.Sprintf("%d 0 obj\n", ids[h])...)
		obj := append([]byte(nil), st.objs[h]...)
		for at, target := range st.pos[h] {
			id, ok := ids[target]
			if !ok || at+hashRefWidth > len(obj) {
				return nil, fmt.Errorf("%w: dangling object reference", ErrStationery)
			}
			copy(obj[at:at+hashRefWidth], fmt.Sprintf("%*d", hashRefWidth, id))
		}
		body = append(body, obj...)
		body = append(body, '\n')
	}

	total := n + len(hashes)
	startxref := len(body)
	var tail bytes.Buffer
	fmt.Fprintf(&tail, "xref\n0 %d\n", total+1)
	tail.WriteString("0000000000 65535 f \n")
	for j := 1; j <= total; j++ {
		fmt.Fprintf(&tail, "%010d 00000 n \n", offsets[j])
	}
	fmt.Fprintf(&tail, "trailer\n<<\n/Size %d\n/Root %d 0 R\n/Info %d 0 R\n>>\n", total+1, n, n-1)
	fmt.Fprintf(&tail, "startxref\n%d\n%%%%EOF\n", startxref)
	return append(body, tail.Bytes()...), nil
}

// parseTailXref reads the startxref pointer at the end of the document and
// returns the cross-reference table's offset and the object count it covers.
func parseTailXref(out []byte) (xrefPos, n int, err error) {
	tail := out
	if len(tail) > 64 {
		tail = tail[len(tail)-64:]
	}
	marker := []byte("startxref\n")
	at := bytes.LastIndex(tail, marker)
	if at < 0 {
		return 0, 0, fmt.Errorf("startxref not found")
	}
	if _, err := fmt.Sscanf(string(tail[at+len(marker):]), "%d", &xrefPos); err != nil {
		return 0, 0, fmt.Errorf("startxref offset: %v", err)
	}
	if xrefPos < 0 || xrefPos >= len(out) {
		return 0, 0, fmt.Errorf("cross-reference offset out of range")
	}
	var count int
	if _, err := fmt.Sscanf(string(out[xrefPos:]), "xref\n0 %d", &count); err != nil {
		return 0, 0, fmt.Errorf("cross-reference header: %v", err)
	}
	return xrefPos, count - 1, nil
}

// readXrefOffsets parses the n in-use entries of the classic fixed-width
// cross-reference table at xrefPos. offsets[0] is unused.
func readXrefOffsets(out []byte, xrefPos, n int) ([]int, error) {
	const entryWidth = 20

	p := xrefPos
	for skip := 0; skip < 2; skip++ { // "xref" and "0 N" header lines
		i := bytes.IndexByte(out[p:], '\n')
		if i < 0 {
			return nil, fmt.Errorf("truncated cross-reference table")
		}
		p += i + 1
	}
	p += entryWidth // free-list head

	offsets := make([]int, n+1)
	for j := 1; j <= n; j++ {
		if p+entryWidth > len(out) {
			return nil, fmt.Errorf("truncated cross-reference table")
		}
		v, err := strconv.Atoi(string(out[p : p+10]))
		if err != nil {
			return nil, fmt.Errorf("cross-reference entry %d: %v", j, err)
		}
		offsets[j] = v
		p += entryWidth
	}
	return offsets, nil
}
