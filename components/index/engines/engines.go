package engines

import (
	"github.com/bububa/jieba-analysis/components/index/engines/memory"
)

var FromMemory = memory.New
