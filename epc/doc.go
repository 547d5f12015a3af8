/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc encodes and decodes EPC identifiers as defined by the GS1 EPC
// Tag Data Standard. At present, this code should be compliant with Release
// 1.12 (Ratified 2019 May).
//
// The following are links to the GS1 General Specifications and the EPC Tag
// Data Standard; this code is based on these guides and does its best to both
// follow their guidelines and properly implement their definitions:
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
// - https://www.gs1.org/standards/epcrfid-epcis-id-keys/epc-rfid-tds/1-12
//
// The package covers seven encodings: SGTIN-96 and SGTIN-198 for serialized
// trade items, SSCC-96 for logistic units, SGLN-96 for locations, GRAI-96 for
// returnable assets, GIAI-96 for individual assets, and GID-96 for
// identifiers outside the GS1 key system. Each is a Scheme: a fixed-width
// layout of named bit fields that can be populated from any of its textual
// forms and rendered to any other. The forms are the binary and hex tag
// content, the EPC Tag URI, the Pure Identity URI, the GS1 element string,
// and a field dictionary with JSON and XML projections.
//
// An EPC is just an identifier; the bits on a tag, the URIs, and the element
// strings are representations of it, and converting between them must never
// change which thing is identified. To that end a Scheme keeps one canonical
// form, the binary string of '0' and '1' characters, and keeps it in sync
// with the fields on every mutation. The string form is deliberate: an EPC's
// width matters, and integer representations silently drop the leading zero
// bits that distinguish, say, a 96-bit encoding from its own low bits. All
// other renderings derive from the canonical form or from the fields it was
// split into, so for any valid identifier each conversion pair is an exact
// inverse.
//
// The partitioned encodings share one complication worth knowing about. A
// GS1 key doesn't record where the company prefix ends, so the binary forms
// carry a partition value that sets the split, and decoding an element
// string requires the caller to say how many digits the company prefix has.
// The partition tables in this package resolve the rest: for each prefix
// length, the bit and digit widths of the prefix and of the reference field
// that shares its budget.
package epc
