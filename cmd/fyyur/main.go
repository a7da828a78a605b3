// Command fyyur serves the venue and artist booking directory.
package main

func main() {
	Execute()
}
