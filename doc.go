/*
Package hat implements a hashed array tree, a sequence container with
amortized O(1) append and O(1) random access.

Hashed Array Trees

A hashed array tree (HAT) stores its elements in a two-level structure: a
directory of L leaves, each of which holds up to L elements, with L always a
power of two. A position p is located by

	leaf   = p >> log2(L)
	offset = p & (L-1)

which keeps random access at a shift and a mask.

The structure was introduced by Edward Sitarski ("HATs: Hashed Array Trees",
Dr. Dobb's Journal, September 1996). Storage is allocated in leaves of fixed
size, so elements only have to be copied when the directory itself runs
full. Wasted space is O(√n), as is the cost of a single growth step.

_________________________________________________________________________

Growth happens in two ways. As long as the requested capacity fits into the
L×L slots of the current directory, new leaves are allocated one at a time
and no element is touched. When the capacity would exceed L×L, L is
increased to the next power of two at or above the square root of the new
capacity and the existing leaves are merged into the wider leaves of the new
directory ("reorganization"). As reorganizations happen after Θ(L²) appends
and move O(L²) elements, the amortized cost of append stays constant.

	Operation     |   HAT           |  Slice (doubling)
	--------------+-----------------+------------------
	Index         |   O(1)          |   O(1)
	Append        |   O(1) amort.   |   O(1) amort.
	Append worst  |   O(√n)         |   O(n)
	Wasted space  |   O(√n)         |   O(n)

Trees are not safe for concurrent use. Cursors are invalidated by any
operation which may grow the tree.

Debug Checks

Unchecked accessors (Get, Set, Ref, Front, Back, RemoveLast and cursor
dereferencing) assert their preconditions and panic with a diagnostic message
on violation. Building with tag

	-tags hat_nodebug

removes these checks. At and SetAt always check their arguments and report
violations as errors.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package hat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hat'
func tracer() tracing.Trace {
	return tracing.Select("hat")
}
