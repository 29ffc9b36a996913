// Copyright 2025 The WordFinisher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the word finisher server and its debugging CLI.

WordFinisher completes a partial word to a full dictionary word. The dictionary
is a newline-delimited word list loaded once at startup into an in-memory
prefix index; every query is a read-only walk of that index.

# Usage

Serve completions over HTTP:

	wordfinisher serve --dict words.txt

Serve completions over MessagePack IPC on stdin/stdout:

	wordfinisher ipc --dict words.txt

Try prefixes interactively:

	wordfinisher cli --dict words.txt -d

Compare the index against other prefix structures:

	wordfinisher bench --dict words.txt --rounds 100 pro test abc

# Configuration

Runtime configuration is read from a TOML file, created with defaults when
missing:

	[server]
	addr = "0.0.0.0:5001"
	max_prefix = 60
	allowed_origins = ["http://localhost:5173"]

	[dict]
	path = "words.txt"
	batch_size = 20000
	watch = false

	[cli]
	min_len = 1
	max_len = 60
	no_filter = false

With watch enabled the word list is rebuilt whenever the file changes. Sending
SIGHUP triggers the same rebuild. The new dictionary replaces the old one only
once it is fully loaded.

# Completion policy

The first stored word in lexicographic order that starts with the prefix is
returned. A prefix that is itself a word completes to itself when nothing
sorts before it. Empty prefixes and unknown prefixes have no suggestion.
*/
package main

func main() {
	Execute()
}
