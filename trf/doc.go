/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package trf reads and writes the FIDE TRF16 interchange format: the
// fixed-column player and pairing records JaVaFo-compatible tools exchange,
// plus the XX* extension lines and the BB* scoring-override lines. Parsing
// yields a swiss.Tournament; formatting a tournament back yields
// byte-identical records, with fixed-width overflows rejected rather than
// truncated.
package trf
