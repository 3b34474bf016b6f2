package mapping

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("jmap.mapping")
