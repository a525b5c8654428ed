/*
 * doc.go, part of gocharges.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goCharges is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package ctf implements the compressed table format, a compressed, line-oriented
//format for per-atom charge tables. ctf aims to produce small files that are very easy
//to read and write, so readers/writers can be easily implemented in other programming
//languages, or even inspected by hand after decompression.

/******************** Format Specification   ***************************************************

A CTF file may have several extensions, which indicate how it is compressed:

	ctf: Compressed with z-standard (zstd). This is the default.
	ctz: Compressed with gzip.
	ctr: Compressed with deflate ("raw" flate).

Any other extension is read and written as zstd.

A CTF file may only contain ASCII symbols.

A CTF file has a "header" starting in the first line, and ending with a line that starts
with the characters "**", followed by one or more spaces and the number of atoms per table.
Each line of the header must be a pair key=value. The header may be empty, in which case
the "**" line is the first line of the file.

After the header, the file has one line per atom, per table. Each line contains the
0-based atom index, the atomic symbol, and the partial charge in atomic units, separated
by whitespace. A charge that could not be computed is written as NaN.

Each table ends with a line containing the single character "*". A file may hold any
number of consecutive tables, all with the same number of atoms.

The "**" sequence may only be used as a header termination, and can not appear anywhere
else in the file.

***************************************************************************************************/

package ctf
