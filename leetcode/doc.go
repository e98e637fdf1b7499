// Package leetcode holds the array and string problems that show up in
// almost every Go interview loop. Every function works on the caller's slice
// or string directly; none of them allocate except where noted.
package leetcode
