// Package converters moves a core.Graph in and out of files.
//
// Two codecs are provided:
//
//   - CSV with the columns DugumId, Ad, Aktiflik, Etkilesim, BaglantiSayisi,
//     Komsular. Komsular is a comma-separated id list; stray double quotes
//     around it (as some generators emit) are tolerated.
//   - JSON {"nodes":[...],"edges":[...]} with one object per node and per edge.
//
// Both loaders rebuild the graph the way it is built at runtime: every node
// first, then AddEdge in file order. Adjacency order and every edge weight
// (including its frozen degree term) are therefore reproduced by the replay;
// weights stored in a file are informational and never trusted.
//
// Errors:
//
//	ErrMalformedRecord - non-numeric field, missing column, invalid node.
//	                     Wrapped with row/column (CSV) or index (JSON).
//	ErrUnknownFormat   - LoadFile/SaveFile could not pick a codec.
//
// References to unknown ids, self-loops and repeated node ids are not errors;
// they are skipped and counted in LoadReport.
package converters
