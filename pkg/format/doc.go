/*
Package format implements the whitespace normalization engine.

	             +-----------+
	             |  Process  |
	             | (2 pass)  |
	             +-----+-----+
	                   |
	      +------------+------------+
	      |                         |
	+-----+-----+            +-----+-----+
	| Transform |            |   Sink    |
	| (scanner) |            | (writer)  |
	+-----------+            +-----------+
	                               |
	                     +---------+---------+
	                     |                   |
	               +-----+-----+       +-----+-----+
	               |  Counter  |       |  Buffer   |
	               | (pass 1)  |       | (pass 2)  |
	               +-----------+       +-----------+

🎯 Purpose:
- Normalizes new line markers (linux, macos, windows)
- Removes trailing whitespace and leading/trailing empty lines
- Adds or removes the end of file marker
- Replaces or removes tabs and non-standard whitespace
- Applies policies to empty and whitespace-only files

🔄 Flow:
1. Transform scans the input bytes exactly once
2. Sink receives the normalized output (and absorbs rewinds)
3. Changes are recorded in order with output line numbers
4. Process runs a counting pass first and materializes bytes only
   when something actually changed

📝 Design Philosophy:
The engine is a pure function over bytes. It performs no I/O, takes no
locks and allocates nothing beyond the change list and (in the second
pass) the output buffer. All file system concerns live in the operation
package, all presentation concerns in the status package. The engine
guarantees idempotence: running it twice with the same Options produces
the same bytes and an empty change list the second time.

🤝 Interfaces:
- Sink: byte sink with rewind, implemented by Counter and Buffer
*/
package format
