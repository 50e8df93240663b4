/*
Package config loads batch plans for fsbatch.

	            +-------------+
	            |    Plan     |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |  JSON   |  |   HCL   |
	+----------+  +---------+  +---------+

🎯 Purpose:
  - Reads a plan file and picks the decoder from its extension
  - Rejects unknown fields
  - Validates and cleans every path before anything touches the disk

🔄 Stages:
A plan lists work for five stages that run in this order: mkdir, write,
copy, read, unlink.

🔍 Example (YAML):

	mkdir:
	  - build/assets
	write:
	  - name: build/VERSION
	    data: "1.2.3"
	copy:
	  - source: assets
	    target: build/assets
	    ignore: ["*.psd", "drafts/**"]
	unlink:
	  - build/old.txt

🔍 Example (HCL, env.NAME reads the environment):

	mkdir = ["${env.OUT}/assets"]

	copy {
	  source = "assets"
	  target = "${env.OUT}/assets"
	}
*/
package config
