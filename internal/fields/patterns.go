package fields

import "regexp"

// Pattern chains mirror the labeled-field conventions of Chinese business
// documents: a field label, a colon-like separator, then a bounded capture
// up to the next delimiter. Bounds keep a stray label from swallowing
// unrelated text.

var (
	partyAChain = []*regexp.Regexp{
		regexp.MustCompile(`甲\s*方[：:\s]*([^\n\r]{2,50}?)[\n\r，,。]`),
		regexp.MustCompile(`委托人[：:\s]*([^\n\r]{2,50}?)[\n\r，,。]`),
	}
	partyBChain = []*regexp.Regexp{
		regexp.MustCompile(`乙\s*方[：:\s]*([^\n\r]{2,50}?)[\n\r，,。]`),
		regexp.MustCompile(`受托人[：:\s]*([^\n\r]{2,50}?)[\n\r，,。]`),
	}
	contractNumberChain = []*regexp.Regexp{
		regexp.MustCompile(`合同编[号码][：:\s]*([A-Za-z0-9\-_/]{5,50})`),
		regexp.MustCompile(`合同号[：:\s]*([A-Za-z0-9\-_/]{5,50})`),
		regexp.MustCompile(`协议编号[：:\s]*([A-Za-z0-9\-_/]{5,50})`),
	}
	contractNameChain = []*regexp.Regexp{
		regexp.MustCompile(`合同名称[：:\s]*([^\n\r]{2,50})`),
		regexp.MustCompile(`项目名称[：:\s]*([^\n\r]{2,50})`),
	}
	signDateChain = []*regexp.Regexp{
		regexp.MustCompile(`签约日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
		regexp.MustCompile(`签订日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
		regexp.MustCompile(`签署日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
	}
	effectiveDateChain = []*regexp.Regexp{
		regexp.MustCompile(`生效日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
		regexp.MustCompile(`本合同自.*?(\d{4}年\d{1,2}月\d{1,2}日).*?起生效`),
	}
	expiryDateChain = []*regexp.Regexp{
		regexp.MustCompile(`到期日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
		regexp.MustCompile(`有效期至[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
	}
	contractAmountChain = []*regexp.Regexp{
		regexp.MustCompile(`合同金额[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`总金额[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`价款[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`人民币[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
	}

	invoiceNumberChain = []*regexp.Regexp{
		regexp.MustCompile(`发票号码[：:\s]*([0-9]{8,20})`),
		regexp.MustCompile(`No[：:\s]*([0-9]{8,20})`),
	}
	invoiceCodeChain = []*regexp.Regexp{
		regexp.MustCompile(`发票代码[：:\s]*([0-9]{10,20})`),
		regexp.MustCompile(`代码[：:\s]*([0-9]{10,20})`),
	}
	invoiceAmountChain = []*regexp.Regexp{
		regexp.MustCompile(`价税合计[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`合计金额[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`金额[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
	}
	taxAmountChain = []*regexp.Regexp{
		regexp.MustCompile(`税额[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`增值税[：:\s]*[￥¥]?\s*([0-9,]+\.\d{2})`),
	}
	invoiceDateChain = []*regexp.Regexp{
		regexp.MustCompile(`开票日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
		regexp.MustCompile(`日期[：:\s]*(\d{4}年\d{1,2}月\d{1,2}日|\d{4}-\d{1,2}-\d{1,2})`),
	}
	sellerChain = []*regexp.Regexp{
		regexp.MustCompile(`销售方[：:\s]*名称[：:\s]*([^\n\r]{2,50})`),
		regexp.MustCompile(`收款方[：:\s]*([^\n\r]{2,50})`),
	}
	buyerChain = []*regexp.Regexp{
		regexp.MustCompile(`购买方[：:\s]*名称[：:\s]*([^\n\r]{2,50})`),
		regexp.MustCompile(`付款方[：:\s]*([^\n\r]{2,50})`),
	}
)

// ContractFields holds the extracted contract values; every field is
// optional and stays nil when no pattern in its chain matched.
type ContractFields struct {
	PartyA         *string  `json:"party_a"`
	PartyB         *string  `json:"party_b"`
	ContractNumber *string  `json:"contract_number"`
	ContractName   *string  `json:"contract_name"`
	SignDate       *string  `json:"sign_date"`
	EffectiveDate  *string  `json:"effective_date"`
	ExpiryDate     *string  `json:"expiry_date"`
	Amount         *float64 `json:"amount"`
}

// InvoiceFields holds the extracted invoice values.
type InvoiceFields struct {
	InvoiceNumber *string  `json:"invoice_number"`
	InvoiceCode   *string  `json:"invoice_code"`
	Amount        *float64 `json:"amount"`
	InvoiceDate   *string  `json:"invoice_date"`
	Seller        *string  `json:"seller"`
	Buyer         *string  `json:"buyer"`
	TaxAmount     *float64 `json:"tax_amount"`
}

// ExtractContract runs every contract field chain over the text.
func ExtractContract(text string) ContractFields {
	return ContractFields{
		PartyA:         textField(text, partyAChain),
		PartyB:         textField(text, partyBChain),
		ContractNumber: textField(text, contractNumberChain),
		ContractName:   textField(text, contractNameChain),
		SignDate:       dateField(text, signDateChain),
		EffectiveDate:  dateField(text, effectiveDateChain),
		ExpiryDate:     dateField(text, expiryDateChain),
		Amount:         amountField(text, contractAmountChain),
	}
}

// ExtractInvoice runs every invoice field chain over the text.
func ExtractInvoice(text string) InvoiceFields {
	return InvoiceFields{
		InvoiceNumber: textField(text, invoiceNumberChain),
		InvoiceCode:   textField(text, invoiceCodeChain),
		Amount:        amountField(text, invoiceAmountChain),
		InvoiceDate:   dateField(text, invoiceDateChain),
		Seller:        textField(text, sellerChain),
		Buyer:         textField(text, buyerChain),
		TaxAmount:     amountField(text, taxAmountChain),
	}
}
