/*
Package operation implements the formatting workflow of wsfmt.

	+-------------+
	|  Operation  |
	| (Workflow)  |
	+------+------+
	       |
	+------+------+     +------------+
	|  Discover   | --> |   Format   |
	|  (Files)    |     |  (Engine)  |
	+-------------+     +-----+------+
	                          |
	                    +-----+------+
	                    |   Status   |
	                    | (Reporting)|
	                    +------------+

🎯 Purpose:
- Orchestrates discovery, formatting and reporting for one run
- Rewrites files in place, or only reports in check-only mode
- Aborts the whole run on the first I/O failure

🔄 Flow:
1. Expands the given paths into a sorted list of files
2. Reads each file and runs the formatting engine over it
3. Writes the result back only when the engine produced changes
4. Reports every outcome through the status manager

📝 Design Philosophy:
The operation stays a thin conductor: discovery, the engine and
reporting each live in their own package and know nothing about each
other. Files are processed strictly in discovery order so output and
on-disk results are deterministic. Failures are all-or-nothing: a file
that cannot be read or written stops the run instead of being skipped,
because a silently skipped file would defeat the point of running a
formatter in CI.

🤝 Interfaces:
- Operation: Executes one configured run
- Options: Injects config, status manager and target paths
*/
package operation
