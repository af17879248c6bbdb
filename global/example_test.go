package global_test

import (
	"fmt"
	"time"

	"github.com/museun/mock-instant/global"
)

func ExampleNow() {
	global.Clock.SetTime(0)

	now := global.Now()
	global.Clock.Advance(15 * time.Second)
	global.Clock.Advance(2 * time.Second)

	// it's been "17" seconds
	fmt.Println(now.Elapsed())
	// Output: 17s
}
