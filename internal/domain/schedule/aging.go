package schedule

// Aging buckets
const (
	BucketUnder6Months = "< 182 Days"
	Bucket6To12Months  = "182-365 Days"
	BucketUnder1Year   = "< 1 Year"
	Bucket1To2Years    = "1-2 Years"
	Bucket2To3Years    = "2-3 Years"
	BucketOver3Years   = "> 3 Years"
	BucketUnclassified = "Unclassified"
)

// TradeAgingBuckets are the receivable and payable buckets in presentation order
var TradeAgingBuckets = []string{
	BucketUnder6Months, Bucket6To12Months, Bucket1To2Years, Bucket2To3Years, BucketOver3Years,
}

// DevelopmentAgingBuckets apply to CWIP and intangibles under development
var DevelopmentAgingBuckets = []string{
	BucketUnder1Year, Bucket1To2Years, Bucket2To3Years, BucketOver3Years,
}

// TradeBucketForDays maps days outstanding to a trade aging bucket
func TradeBucketForDays(days int) string {
	switch {
	case days < 182:
		return BucketUnder6Months
	case days <= 365:
		return Bucket6To12Months
	case days <= 2*365:
		return Bucket1To2Years
	case days <= 3*365:
		return Bucket2To3Years
	default:
		return BucketOver3Years
	}
}

// IsTradeBucket reports whether b is one of TradeAgingBuckets
func IsTradeBucket(b string) bool {
	return contains(TradeAgingBuckets, b)
}

// IsOldDevelopmentBucket reports whether work has been in progress for more than two years
func IsOldDevelopmentBucket(b string) bool {
	return b == Bucket2To3Years || b == BucketOver3Years
}

func validateBucket(b string, allowed []string) error {
	if b == "" || contains(allowed, b) {
		return nil
	}
	return oneOf("Aging bucket", b, allowed...)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
