/*
Package status tracks per-file outcomes and renders them for the user.

	            +-------------+
	            |   Status    |
	            | (Tracking)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Reports  |           | Output  |
	| (Counts)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Records the outcome of every processed file
- Prints changed files and their individual fixes
- Aggregates counts for the end-of-run verdict and exit code
- Controls colored output globally

🔄 Flow:
1. The operation processes a file and reports its changes or error
2. TrackFile classifies the outcome and updates the counters
3. Files with fixes are printed immediately, clean files stay silent
4. The command reads the Summary to pick the verdict and exit code

📝 Design Philosophy:
Presentation is split from processing: the engine knows nothing about
terminals and this package knows nothing about whitespace. User-facing
lines go through a ChangeFormatter so output stays testable as plain
strings, while every event is mirrored into zerolog for debugging.
Clean files are deliberately quiet on stdout; a run over a large tree
should only talk about the files that need attention.

🤝 Interfaces:
- ChangeFormatter: Renders file headers, change entries and errors
- Manager: Tracks outcomes and owns the counters
*/
package status
