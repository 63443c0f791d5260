package fields

import (
	"reflect"
	"testing"
)

func strv(p *string, t *testing.T) string {
	t.Helper()
	if p == nil {
		t.Fatal("expected non-nil value")
	}
	return *p
}

func TestExtractContractLabeledFields(t *testing.T) {
	text := "合同名称：设备采购合同\n" +
		"合同编号：HT-2024-0012\n" +
		"甲方：北京某公司，统一社会信用代码911101085\n" +
		"乙方： 上海供应商有限公司。\n" +
		"合同金额：¥1,234,567.89\n" +
		"签约日期：2024年3月5日\n" +
		"有效期至：2025-03-04\n"

	got := ExtractContract(text)

	if v := strv(got.PartyA, t); v != "北京某公司" {
		t.Errorf("party_a = %q", v)
	}
	if v := strv(got.PartyB, t); v != "上海供应商有限公司" {
		t.Errorf("party_b = %q", v)
	}
	if v := strv(got.ContractNumber, t); v != "HT-2024-0012" {
		t.Errorf("contract_number = %q", v)
	}
	if v := strv(got.ContractName, t); v != "设备采购合同" {
		t.Errorf("contract_name = %q", v)
	}
	if got.Amount == nil || *got.Amount != 1234567.89 {
		t.Errorf("amount = %v, want 1234567.89", got.Amount)
	}
	if v := strv(got.SignDate, t); v != "2024-03-05T00:00:00" {
		t.Errorf("sign_date = %q", v)
	}
	if v := strv(got.ExpiryDate, t); v != "2025-03-04T00:00:00" {
		t.Errorf("expiry_date = %q", v)
	}
	if got.EffectiveDate != nil {
		t.Errorf("effective_date should be nil, got %q", *got.EffectiveDate)
	}
}

func TestExtractContractFallbackChains(t *testing.T) {
	text := "委托人：中国某研究院，\n受托人：某咨询公司。\n协议编号：XY2023-776\n总金额：880000.00元\n"
	got := ExtractContract(text)
	if v := strv(got.PartyA, t); v != "中国某研究院" {
		t.Errorf("party_a via 委托人 = %q", v)
	}
	if v := strv(got.PartyB, t); v != "某咨询公司" {
		t.Errorf("party_b via 受托人 = %q", v)
	}
	if v := strv(got.ContractNumber, t); v != "XY2023-776" {
		t.Errorf("contract_number via 协议编号 = %q", v)
	}
	if got.Amount == nil || *got.Amount != 880000.00 {
		t.Errorf("amount via 总金额 = %v", got.Amount)
	}
}

func TestFirstMatchWins(t *testing.T) {
	// Both 签约日期 and 签订日期 are present; the first chain entry must win
	// and the later candidate is never consulted.
	text := "签订日期：2022-01-01\n签约日期：2024-06-30\n"
	got := ExtractContract(text)
	if v := strv(got.SignDate, t); v != "2024-06-30T00:00:00" {
		t.Errorf("sign_date = %q, want first-pattern match 2024-06-30T00:00:00", v)
	}
}

func TestExtractContractEffectiveDateMidSentence(t *testing.T) {
	text := "本合同自2024年1月15日签字盖章之日起生效。\n"
	got := ExtractContract(text)
	if v := strv(got.EffectiveDate, t); v != "2024-01-15T00:00:00" {
		t.Errorf("effective_date = %q", v)
	}
}

func TestExtractContractNoMatches(t *testing.T) {
	got := ExtractContract("这份文本没有任何可识别字段。\n")
	if !reflect.DeepEqual(got, ContractFields{}) {
		t.Errorf("expected all-nil fields, got %+v", got)
	}
}

func TestExtractInvoice(t *testing.T) {
	text := "发票代码：1100231130\n发票号码：04731182\n开票日期：2024-11-02\n" +
		"销售方 名称：某某科技有限公司\n购买方 名称：北京采购方公司\n" +
		"价税合计：￥11,300.00\n税额：1,300.00\n"

	got := ExtractInvoice(text)

	if v := strv(got.InvoiceNumber, t); v != "04731182" {
		t.Errorf("invoice_number = %q", v)
	}
	if v := strv(got.InvoiceCode, t); v != "1100231130" {
		t.Errorf("invoice_code = %q", v)
	}
	if got.Amount == nil || *got.Amount != 11300.00 {
		t.Errorf("amount = %v", got.Amount)
	}
	if got.TaxAmount == nil || *got.TaxAmount != 1300.00 {
		t.Errorf("tax_amount = %v", got.TaxAmount)
	}
	if v := strv(got.InvoiceDate, t); v != "2024-11-02T00:00:00" {
		t.Errorf("invoice_date = %q", v)
	}
	if v := strv(got.Seller, t); v != "某某科技有限公司" {
		t.Errorf("seller = %q", v)
	}
	if v := strv(got.Buyer, t); v != "北京采购方公司" {
		t.Errorf("buyer = %q", v)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024年3月5日", "2024-03-05T00:00:00", true},
		{"2024年12月31日", "2024-12-31T00:00:00", true},
		{"2024-3-5", "2024-03-05T00:00:00", true},
		{"2024-03-05", "2024-03-05T00:00:00", true},
		{"2024年13月5日", "", false},
		{"年月日", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseDate(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,234,567.89", 1234567.89, true},
		{"¥1,234,567.89", 1234567.89, true},
		{"￥100.00", 100.00, true},
		{"0.50", 0.5, true},
		{"100", 0, false},     // no fraction digits
		{"100.5", 0, false},   // one fraction digit
		{"100.500", 0, false}, // three fraction digits
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseAmount(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseAmount(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDetectStampPages(t *testing.T) {
	pages := []string{"无关文本", "双方签字盖章生效", "无关文本"}
	if got := DetectStampPages(pages); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("DetectStampPages = %v, want [1]", got)
	}
	if got := DetectStampPages(nil); got != nil {
		t.Errorf("no pages must yield nil, got %v", got)
	}
	pages = []string{"第一页印章", "第二页", "双方签署"}
	if got := DetectStampPages(pages); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("DetectStampPages = %v, want [0 2]", got)
	}
}
