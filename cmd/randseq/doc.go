// 31 July 2020

/*
Randseq is for making random alignments for testing the code.
Usage:

	randseq [options] fname nseq length

will generate nseq sequences of length length and write them to fname.
A name of "-" means standard output.

Flags:

	-g
		no gaps in the output sequences
	-e
		provoke errors. The last sequence will be one residue short. This is
		an error for "msatool refine" unless the sequences are read as not
		aligned.
	-r
		random number seed
	-c
		comment written after each label

We are most interested in benchmarking and parsing, so the content is not so important.
The only question that comes up is white space and gaps.
Whitespace should generally be unpredictable, so we generate funny cases.
*/
package main
