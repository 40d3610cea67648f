// Package quotepdf renders business documents (quotations) to single PDF
// byte buffers.
//
// The engine consumes a fully prepared DocumentSnapshot, a locale tag and a
// pre-loaded embeddable font, and composes a fixed sequence of drawing
// stages (header, party info, items table, financial summary, then the
// optional installment schedule, notes and supplementary media), threading
// one vertical cursor from top to bottom. Each generation owns its page,
// cursor and document object, so callers may generate many documents
// concurrently from one Generator.
//
// The engine performs no output I/O: delivery of the returned buffer is the
// caller's responsibility. Optional embedded images are fetched by reference;
// a fetch or decode failure is logged and the document renders without the
// image.
package quotepdf
