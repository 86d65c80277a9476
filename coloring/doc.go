// Package coloring assigns colour tokens to users with the greedy
// Welsh–Powell heuristic.
//
// Algorithm:
//
//  1. Order nodes by degree, descending; equal degrees keep insertion order.
//  2. Take the first uncoloured node in that order and open colour class c,
//     whose token is palette[c % len(palette)].
//  3. Scan the ordered list once more; give the token to every uncoloured node
//     that is not adjacent to any node currently holding that token.
//  4. Repeat with class c+1 until every node is coloured.
//
// The conflict check compares tokens, not class indices. When more classes
// are needed than the palette holds, tokens wrap around: a later class reuses
// an earlier token, and nodes of that class are checked against every
// neighbour already wearing it. Colourings stay proper as long as the palette
// has at least as many entries as classes are opened; with a shorter palette
// the wrap-around may place the same token on adjacent nodes (Conflicts
// reports them).
//
// Complexity: O(C · V · Δ) where C is the number of classes and Δ the max degree.
package coloring
