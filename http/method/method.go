package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	PUT
	DELETE
	OPTIONS
	HEAD
	TRACE
	CONNECT

	// Count is the greatest integer value among the methods, so the real
	// number of methods equals to it
	Count = iota - 1
)

// List contains all the supported HTTP methods, sorted by their integer values.
// Unknown is not included
var List = []Method{GET, POST, PUT, DELETE, OPTIONS, HEAD, TRACE, CONNECT}

var lut = [...]string{
	GET:     "GET",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	OPTIONS: "OPTIONS",
	HEAD:    "HEAD",
	TRACE:   "TRACE",
	CONNECT: "CONNECT",
}

func (m Method) String() string {
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}

// Parse translates a method token into its enum value. Tokens are case-sensitive,
// anything beside the eight canonical ones results in Unknown
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		} else if str == "CONNECT" {
			return CONNECT
		}
	}

	return Unknown
}
