package encoding2

import (
	. "gopkg.in/check.v1"
)

type PrintableSuite struct {
}

var _ = Suite(&PrintableSuite{})

func (s *PrintableSuite) TestPrintableText(c *C) {
	c.Assert(ToPrintable(nil), HasLen, 0)
	c.Assert(string(ToPrintable([]byte("Hello, world!"))), Equals, "Hello, world!")
	c.Assert(string(ToPrintable([]byte{' ', '~'})), Equals, " ~")
}

func (s *PrintableSuite) TestNonPrintableReplaced(c *C) {
	c.Assert(string(ToPrintable([]byte{0x00})), Equals, ".")
	c.Assert(string(ToPrintable([]byte{0xFF})), Equals, ".")
	c.Assert(
		string(ToPrintable([]byte{0x01, 'a', 0xFF, '~', 0x1F, ' '})),
		Equals,
		".a.~. ")
}

func (s *PrintableSuite) TestPrintableAllValues(c *C) {
	for x := 0; x < 256; x++ {
		out := ToPrintable([]byte{byte(x)})
		c.Assert(out, HasLen, 1)
		if x >= 0x20 && x <= 0x7E {
			c.Assert(out[0], Equals, byte(x))
		} else {
			c.Assert(out[0], Equals, byte('.'))
		}
	}
}
