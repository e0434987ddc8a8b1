/*
Package config manages configuration parsing and validation for wsfmt.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |   HCL   |  |  JSON   |
	|  Parser  |  | Parser  |  | Parser  |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Loads configuration from .wsfmt.yaml, .wsfmt.hcl or .wsfmt.json files
- Validates configuration values and rejects contradictory combinations
- Converts file and flag settings into the engine's typed Options
- Supplies defaults when no config file is present

🔄 Flow:
1. The command layer finds or is told the config file
2. A registered parser for the extension decodes it over the defaults
3. Validate rejects unknown enum values and impossible combinations
4. Options hands the engine its typed, validated settings

📝 Design Philosophy:
Settings stay close to their file representation (strings and integers)
so the same struct decodes from every supported format and maps onto
command line flags. Strict decoding is on everywhere: unknown YAML and
JSON fields and undeclared HCL attributes are errors, so typos in config
files surface immediately instead of being silently ignored. Interactions
between settings (the end of file marker rules, the trivial file
policies) are resolved in exactly one place, Options.
*/
package config
